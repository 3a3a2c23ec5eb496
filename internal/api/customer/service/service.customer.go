// Package customersvc chứa service data access cho domain customer.
package customersvc

import (
	"context"
	"fmt"

	basesvc "shop_admin/internal/api/base/service"
	customerdto "shop_admin/internal/api/customer/dto"
	customermodels "shop_admin/internal/api/customer/models"
	"shop_admin/internal/common"
	"shop_admin/internal/global"
	"shop_admin/internal/utility"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CustomerService là service quản lý khách hàng.
type CustomerService struct {
	*basesvc.BaseServiceMongoImpl[customermodels.Customer]
}

// NewCustomerService tạo mới CustomerService
func NewCustomerService() (*CustomerService, error) {
	collection, exist := global.RegistryCollections.Get(global.ColNames.Customers)
	if !exist {
		return nil, fmt.Errorf("failed to get customers collection: %v", common.ErrNotFound)
	}

	return &CustomerService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[customermodels.Customer](collection),
	}, nil
}

// CreateCustomer tạo khách hàng mới, convert order reference từ hex string sang ObjectID.
func (s *CustomerService) CreateCustomer(ctx context.Context, input *customerdto.CustomerCreateInput) (customermodels.Customer, error) {
	customer := customermodels.Customer{
		FullName:        input.FullName,
		Email:           input.Email,
		ContactNumber:   input.ContactNumber,
		DeliveryAddress: input.DeliveryAddress,
		OrderReference:  utility.StringArray2ObjectIDArray(input.OrderReference),
	}
	return s.BaseServiceMongoImpl.InsertOne(ctx, customer)
}

// UpdateCustomer cập nhật khách hàng theo ID.
func (s *CustomerService) UpdateCustomer(ctx context.Context, id primitive.ObjectID, input *customerdto.CustomerUpdateInput) (customermodels.Customer, error) {
	set := map[string]interface{}{}
	if input.FullName != "" {
		set["fullName"] = input.FullName
	}
	if input.Email != "" {
		set["email"] = input.Email
	}
	if input.ContactNumber != "" {
		set["contactNumber"] = input.ContactNumber
	}
	if input.DeliveryAddress != "" {
		set["deliveryAddress"] = input.DeliveryAddress
	}
	if input.OrderReference != nil {
		set["orderReference"] = utility.StringArray2ObjectIDArray(input.OrderReference)
	}

	if len(set) == 0 {
		return s.BaseServiceMongoImpl.FindOneById(ctx, id)
	}

	updateData := &basesvc.UpdateData{Set: set}
	return s.BaseServiceMongoImpl.UpdateById(ctx, id, updateData)
}

// AddOrderReference gắn thêm một đơn hàng vào khách hàng (không trùng lặp).
func (s *CustomerService) AddOrderReference(ctx context.Context, customerID primitive.ObjectID, orderID primitive.ObjectID) (customermodels.Customer, error) {
	updateData := &basesvc.UpdateData{
		AddToSet: map[string]interface{}{
			"orderReference": orderID,
		},
	}
	return s.BaseServiceMongoImpl.UpdateById(ctx, customerID, updateData)
}
