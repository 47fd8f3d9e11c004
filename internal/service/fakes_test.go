package service

import (
	"context"
	"time"

	"storefront/internal/domain"
	"storefront/internal/repository"
)

type fakeProductRepo struct {
	calls    int
	products map[int64]domain.Product
	nextID   int64
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[int64]domain.Product{}, nextID: 1}
}

func (r *fakeProductRepo) Create(_ context.Context, name string, price float64, description string) (int64, error) {
	r.calls++
	id := r.nextID
	r.nextID++
	r.products[id] = domain.Product{ID: id, Name: name, Price: price, Description: description, CreatedAt: time.Now()}
	return id, nil
}

func (r *fakeProductRepo) List(context.Context) ([]domain.Product, error) {
	r.calls++
	out := []domain.Product{}
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id int64) (*domain.Product, error) {
	r.calls++
	p, ok := r.products[id]
	if !ok {
		return nil, repository.ErrNoRow
	}
	return &p, nil
}

func (r *fakeProductRepo) Update(_ context.Context, id int64, name string, price float64, description string) (int64, error) {
	r.calls++
	p, ok := r.products[id]
	if !ok {
		return 0, nil
	}
	p.Name, p.Price, p.Description = name, price, description
	r.products[id] = p
	return 1, nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id int64) (int64, error) {
	r.calls++
	if _, ok := r.products[id]; !ok {
		return 0, nil
	}
	delete(r.products, id)
	return 1, nil
}

type fakeUserRepo struct {
	calls int
	users map[int64]domain.User
	err   error
}

func (r *fakeUserRepo) Create(_ context.Context, name, email string) (int64, error) {
	r.calls++
	if r.err != nil {
		return 0, r.err
	}
	id := int64(len(r.users) + 1)
	r.users[id] = domain.User{ID: id, Name: name, Email: email}
	return id, nil
}

func (r *fakeUserRepo) List(context.Context) ([]domain.User, error) {
	r.calls++
	return nil, r.err
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	r.calls++
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNoRow
	}
	return &u, nil
}

func (r *fakeUserRepo) Update(_ context.Context, id int64, name, email string) (int64, error) {
	r.calls++
	if _, ok := r.users[id]; !ok {
		return 0, nil
	}
	r.users[id] = domain.User{ID: id, Name: name, Email: email}
	return 1, nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id int64) (int64, error) {
	r.calls++
	if _, ok := r.users[id]; !ok {
		return 0, nil
	}
	delete(r.users, id)
	return 1, nil
}

type fakeAdminRepo struct {
	admins []domain.Admin
}

func (r *fakeAdminRepo) Create(_ context.Context, username, password, email string) (int64, error) {
	id := int64(len(r.admins) + 1)
	r.admins = append(r.admins, domain.Admin{ID: id, Username: username, Password: password, Email: email})
	return id, nil
}

func (r *fakeAdminRepo) GetByUsername(_ context.Context, username string) (*domain.Admin, error) {
	for _, a := range r.admins {
		if a.Username == username {
			return &a, nil
		}
	}
	return nil, repository.ErrNoRow
}

func (r *fakeAdminRepo) List(context.Context) ([]domain.Admin, error) {
	return append([]domain.Admin(nil), r.admins...), nil
}

func (r *fakeAdminRepo) UpdatePassword(_ context.Context, id int64, password string) (int64, error) {
	for i := range r.admins {
		if r.admins[i].ID == id {
			r.admins[i].Password = password
			return 1, nil
		}
	}
	return 0, nil
}

func strPtr(s string) *string {
	return &s
}
