package repository

import "github.com/fcbt5uhrtd65/ProjectStore/internal/store"

type Repository struct {
	KV        store.Store
	Products  ProductRepo
	Orders    OrderRepo
	Customers CustomerRepo
	Movements MovementRepo
	Settings  SettingsRepo
}

func New(kv store.Store) *Repository {
	return &Repository{
		KV:        kv,
		Products:  NewProductRepo(kv),
		Orders:    NewOrderRepo(kv),
		Customers: NewCustomerRepo(kv),
		Movements: NewMovementRepo(kv),
		Settings:  NewSettingsRepo(kv),
	}
}
