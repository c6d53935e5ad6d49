package usecase

import (
	"context"
	"fmt"
	"time"

	"hunarhub/internal/data/entity"
	"hunarhub/internal/data/repository"

	"github.com/google/uuid"
)

// In-memory repository fakes. Each stores entities in slices and answers
// the queries the services actually issue; nothing touches a database.

type fakeUserRepo struct {
	users    []*entity.User
	profiles []*entity.Entrepreneur
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	for _, u := range f.users {
		if u.Email == user.Email {
			return fmt.Errorf("email %s already exists", user.Email)
		}
	}
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserRepo) CreateWithEntrepreneur(ctx context.Context, user *entity.User, profile *entity.Entrepreneur) error {
	if err := f.Create(ctx, user); err != nil {
		return err
	}
	if profile != nil {
		f.profiles = append(f.profiles, profile)
	}
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) CountAll(ctx context.Context) (int64, error) {
	return int64(len(f.users)), nil
}

type fakeSessionRepo struct {
	sessions []*entity.Session
	revoked  []string
}

func (f *fakeSessionRepo) Create(ctx context.Context, session *entity.Session) error {
	f.sessions = append(f.sessions, session)
	return nil
}

func (f *fakeSessionRepo) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	for _, s := range f.sessions {
		if s.Token.String() == token && s.Active(time.Now()) {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeSessionRepo) Revoke(ctx context.Context, token string) error {
	f.revoked = append(f.revoked, token)
	return nil
}

type fakeEntrepreneurRepo struct {
	profiles []*entity.EntrepreneurProfile
	verified []uuid.UUID
}

func (f *fakeEntrepreneurRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Entrepreneur, error) {
	for _, p := range f.profiles {
		if p.UserID == userID {
			return &entity.Entrepreneur{
				UserID:       p.UserID,
				BusinessName: p.BusinessName,
				Verified:     p.Verified,
			}, nil
		}
	}
	return nil, nil
}

func (f *fakeEntrepreneurRepo) FindAllProfiles(ctx context.Context) ([]*entity.EntrepreneurProfile, error) {
	return f.profiles, nil
}

func (f *fakeEntrepreneurRepo) FindPendingProfiles(ctx context.Context) ([]*entity.EntrepreneurProfile, error) {
	var pending []*entity.EntrepreneurProfile
	for _, p := range f.profiles {
		if !p.Verified {
			pending = append(pending, p)
		}
	}
	return pending, nil
}

func (f *fakeEntrepreneurRepo) Verify(ctx context.Context, userID uuid.UUID) error {
	f.verified = append(f.verified, userID)
	for _, p := range f.profiles {
		if p.UserID == userID {
			p.Verified = true
		}
	}
	return nil
}

func (f *fakeEntrepreneurRepo) CountAll(ctx context.Context) (int64, error) {
	return int64(len(f.profiles)), nil
}

func (f *fakeEntrepreneurRepo) CountPending(ctx context.Context) (int64, error) {
	var n int64
	for _, p := range f.profiles {
		if !p.Verified {
			n++
		}
	}
	return n, nil
}

type fakeProductRepo struct {
	products []*entity.Product
	images   map[uuid.UUID][]*entity.ProductImage
	failNext error
}

func (f *fakeProductRepo) CreateWithImages(ctx context.Context, product *entity.Product, images []*entity.ProductImage) error {
	if f.failNext != nil {
		err := f.failNext
		f.failNext = nil
		return err
	}
	f.products = append(f.products, product)
	if f.images == nil {
		f.images = map[uuid.UUID][]*entity.ProductImage{}
	}
	f.images[product.ID] = images
	return nil
}

func (f *fakeProductRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) FindByEntrepreneur(ctx context.Context, entrepreneurID uuid.UUID) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range f.products {
		if p.EntrepreneurID == entrepreneurID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) FindRecent(ctx context.Context, limit int) ([]*entity.Product, error) {
	if len(f.products) > limit {
		return f.products[:limit], nil
	}
	return f.products, nil
}

type fakeProductImageRepo struct {
	products *fakeProductRepo
}

func (f *fakeProductImageRepo) FindURLsByProduct(ctx context.Context, productID uuid.UUID) ([]string, error) {
	var urls []string
	if f.products != nil {
		for _, img := range f.products.images[productID] {
			urls = append(urls, img.ImageURL)
		}
	}
	return urls, nil
}

type fakeOrderRepo struct {
	orders []*entity.Order
}

func (f *fakeOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	f.orders = append(f.orders, order)
	return nil
}

func (f *fakeOrderRepo) UpdateStatusByOwner(ctx context.Context, orderID, entrepreneurID uuid.UUID, status string) (bool, error) {
	for _, o := range f.orders {
		if o.ID == orderID && o.EntrepreneurID == entrepreneurID {
			o.Status = status
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeOrderRepo) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.CustomerOrder, error) {
	var out []*entity.CustomerOrder
	for _, o := range f.orders {
		if o.CustomerID == customerID {
			out = append(out, &entity.CustomerOrder{Order: *o})
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) FindByEntrepreneur(ctx context.Context, entrepreneurID uuid.UUID) ([]*entity.EntrepreneurOrder, error) {
	var out []*entity.EntrepreneurOrder
	for _, o := range f.orders {
		if o.EntrepreneurID == entrepreneurID {
			out = append(out, &entity.EntrepreneurOrder{Order: *o})
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) CountAll(ctx context.Context) (int64, error) {
	return int64(len(f.orders)), nil
}

type fakeServiceRepo struct {
	services []*entity.Service
}

func (f *fakeServiceRepo) Create(ctx context.Context, service *entity.Service) error {
	f.services = append(f.services, service)
	return nil
}

func (f *fakeServiceRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	for _, s := range f.services {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeServiceRepo) FindByEntrepreneur(ctx context.Context, entrepreneurID uuid.UUID) ([]*entity.Service, error) {
	var out []*entity.Service
	for _, s := range f.services {
		if s.EntrepreneurID == entrepreneurID {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeServiceRequestRepo struct {
	requests []*entity.ServiceRequest
}

func (f *fakeServiceRequestRepo) Create(ctx context.Context, request *entity.ServiceRequest) error {
	f.requests = append(f.requests, request)
	return nil
}

func (f *fakeServiceRequestRepo) UpdateStatusByOwner(ctx context.Context, requestID, entrepreneurID uuid.UUID, status string) (bool, error) {
	for _, r := range f.requests {
		if r.ID == requestID && r.EntrepreneurID == entrepreneurID {
			r.Status = status
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeServiceRequestRepo) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.CustomerServiceRequest, error) {
	var out []*entity.CustomerServiceRequest
	for _, r := range f.requests {
		if r.CustomerID == customerID {
			out = append(out, &entity.CustomerServiceRequest{ServiceRequest: *r})
		}
	}
	return out, nil
}

func (f *fakeServiceRequestRepo) FindByEntrepreneur(ctx context.Context, entrepreneurID uuid.UUID) ([]*entity.EntrepreneurServiceRequest, error) {
	var out []*entity.EntrepreneurServiceRequest
	for _, r := range f.requests {
		if r.EntrepreneurID == entrepreneurID {
			out = append(out, &entity.EntrepreneurServiceRequest{ServiceRequest: *r})
		}
	}
	return out, nil
}

func (f *fakeServiceRequestRepo) CountAll(ctx context.Context) (int64, error) {
	return int64(len(f.requests)), nil
}

type fakeReviewRepo struct {
	reviews []*entity.Review
}

func (f *fakeReviewRepo) Create(ctx context.Context, review *entity.Review) error {
	f.reviews = append(f.reviews, review)
	return nil
}

func (f *fakeReviewRepo) FindByEntrepreneur(ctx context.Context, entrepreneurID uuid.UUID) ([]*entity.EntrepreneurReview, error) {
	var out []*entity.EntrepreneurReview
	for _, r := range f.reviews {
		if r.EntrepreneurID == entrepreneurID {
			out = append(out, &entity.EntrepreneurReview{Review: *r, CustomerName: "Customer"})
		}
	}
	return out, nil
}

// newFakeRepository builds a Repository whose fields are the in-memory
// fakes above.
func newFakeRepository() (*repository.Repository, *fakeUserRepo, *fakeSessionRepo, *fakeProductRepo) {
	users := &fakeUserRepo{}
	sessions := &fakeSessionRepo{}
	products := &fakeProductRepo{}

	repo := &repository.Repository{
		User:           users,
		Session:        sessions,
		Entrepreneur:   &fakeEntrepreneurRepo{},
		Product:        products,
		ProductImage:   &fakeProductImageRepo{products: products},
		Order:          &fakeOrderRepo{},
		Service:        &fakeServiceRepo{},
		ServiceRequest: &fakeServiceRequestRepo{},
		Review:         &fakeReviewRepo{},
	}

	return repo, users, sessions, products
}
