package rpcustomer

import (
	"context"

	"opne/internal/app/domains/entity/etcustomer"
)

// CustomerRepository 客户仓储接口（只读，客户数据由外部协作方维护）
type CustomerRepository interface {
	// GetByID 根据ID查询客户，不存在返回 errorx.ErrCustomerNotFound
	GetByID(ctx context.Context, customerID int64) (*etcustomer.Customer, error)

	// GetByIDs 批量查询客户（看板富化用）
	GetByIDs(ctx context.Context, customerIDs []int64) (map[int64]*etcustomer.Customer, error)
}
