package rpcustomer

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"opne/internal/app/domains/entity/etcustomer"
	"opne/internal/app/infra/persistence/entity"
	"opne/internal/app/pkg/errorx"
)

// CustomerRepositoryImpl 客户仓储实现（MySQL）
type CustomerRepositoryImpl struct {
	db *gorm.DB
}

// NewCustomerRepository 创建客户仓储实例
func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &CustomerRepositoryImpl{db: db}
}

// GetByID 根据ID查询客户
func (r *CustomerRepositoryImpl) GetByID(ctx context.Context, customerID int64) (*etcustomer.Customer, error) {
	var po entity.Customer
	err := r.db.WithContext(ctx).Where("id = ?", customerID).First(&po).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.ErrCustomerNotFound
		}
		return nil, err
	}
	return toDomainCustomer(&po), nil
}

// GetByIDs 批量查询客户
func (r *CustomerRepositoryImpl) GetByIDs(ctx context.Context, customerIDs []int64) (map[int64]*etcustomer.Customer, error) {
	if len(customerIDs) == 0 {
		return map[int64]*etcustomer.Customer{}, nil
	}

	var pos []entity.Customer
	if err := r.db.WithContext(ctx).Where("id IN ?", customerIDs).Find(&pos).Error; err != nil {
		return nil, err
	}

	customers := make(map[int64]*etcustomer.Customer, len(pos))
	for i := range pos {
		customers[pos[i].ID] = toDomainCustomer(&pos[i])
	}
	return customers, nil
}

// toDomainCustomer GORM 模型转换为领域对象
func toDomainCustomer(po *entity.Customer) *etcustomer.Customer {
	return &etcustomer.Customer{
		ID:          po.ID,
		Name:        po.Name,
		Email:       po.Email,
		TotalSpent:  po.TotalSpent,
		OrderCount:  po.OrderCount,
		LoyaltyTier: po.LoyaltyTier,
		IsVIP:       po.IsVIP,
		CreatedAt:   po.CreatedAt,
	}
}
