package service

import (
	"context"

	"freshsprout-be/internal/entity"
	"freshsprout-be/internal/repository/contract"
	"freshsprout-be/internal/repository/specification"
	"freshsprout-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// In-memory repositories backing service tests. They store and return
// copies, so a service change that skips the repository Update call is
// visible as stale persisted state.

type memUserRepo struct {
	users   map[uuid.UUID]entity.User
	findErr error
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[uuid.UUID]entity.User{}}
}

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	r.users[u.Id] = *u
	return nil
}

func (r *memUserRepo) Update(_ context.Context, u *entity.User) error {
	r.users[u.Id] = *u
	return nil
}

func (r *memUserRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, spec := range specs {
		if byID, ok := spec.(specification.ByID); ok {
			if u, ok := r.users[byID.ID]; ok {
				return &u, nil
			}
		}
	}
	return nil, nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, u := range r.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) FindByStripeCustomer(_ context.Context, customerId string) (*entity.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, u := range r.users {
		if u.StripeCustomerId != nil && *u.StripeCustomerId == customerId {
			return &u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

type memOrderRepo struct {
	orders map[uuid.UUID]entity.Order
}

func newMemOrderRepo() *memOrderRepo {
	return &memOrderRepo{orders: map[uuid.UUID]entity.Order{}}
}

func (r *memOrderRepo) Create(_ context.Context, o *entity.Order) error {
	for _, existing := range r.orders {
		if existing.StripeSessionId == o.StripeSessionId {
			return contract.ErrDuplicateOrder
		}
	}
	r.orders[o.Id] = *o
	return nil
}

func (r *memOrderRepo) Update(_ context.Context, o *entity.Order) error {
	r.orders[o.Id] = *o
	return nil
}

func orderMatches(o entity.Order, spec specification.Specification) bool {
	switch s := spec.(type) {
	case specification.ByID:
		return o.Id == s.ID
	case specification.ByStripeSession:
		return o.StripeSessionId == s.SessionID
	case specification.ByStripeSubscription:
		return o.StripeSubscriptionId != nil && *o.StripeSubscriptionId == s.SubscriptionID
	case specification.UserOwnedBy:
		return o.UserId != nil && *o.UserId == s.UserID
	default:
		return true
	}
}

func (r *memOrderRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.Order, error) {
	for _, o := range r.orders {
		ok := true
		for _, spec := range specs {
			if !orderMatches(o, spec) {
				ok = false
				break
			}
		}
		if ok {
			return &o, nil
		}
	}
	return nil, nil
}

func (r *memOrderRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range r.orders {
		ok := true
		for _, spec := range specs {
			if !orderMatches(o, spec) {
				ok = false
				break
			}
		}
		if ok {
			cp := o
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memOrderRepo) Count(_ context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(context.Background(), specs...)
	return int64(len(all)), nil
}

type memProductRepo struct {
	products map[uuid.UUID]entity.Product
	findErr  error
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: map[uuid.UUID]entity.Product{}}
}

func (r *memProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.products[p.Id] = *p
	return nil
}

func (r *memProductRepo) Update(_ context.Context, p *entity.Product) error {
	r.products[p.Id] = *p
	return nil
}

func (r *memProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.products, id)
	return nil
}

func (r *memProductRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.Product, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, p := range r.products {
		ok := true
		for _, spec := range specs {
			switch s := spec.(type) {
			case specification.ByID:
				ok = ok && p.Id == s.ID
			case specification.BySlug:
				ok = ok && p.Slug == s.Slug
			}
		}
		if ok {
			return &p, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) FindAll(_ context.Context, _ ...specification.Specification) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		cp := p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memProductRepo) Count(_ context.Context, _ ...specification.Specification) (int64, error) {
	return int64(len(r.products)), nil
}

type memGiftRepo struct {
	centers    []entity.SeniorCenter
	deliveries []entity.GiftDelivery
}

func (r *memGiftRepo) CreateDelivery(_ context.Context, d *entity.GiftDelivery) error {
	r.deliveries = append(r.deliveries, *d)
	return nil
}

func (r *memGiftRepo) UpdateDelivery(_ context.Context, d *entity.GiftDelivery) error {
	for i := range r.deliveries {
		if r.deliveries[i].Id == d.Id {
			r.deliveries[i] = *d
		}
	}
	return nil
}

func (r *memGiftRepo) FindOneDelivery(_ context.Context, specs ...specification.Specification) (*entity.GiftDelivery, error) {
	for _, d := range r.deliveries {
		for _, spec := range specs {
			if byID, ok := spec.(specification.ByID); ok && d.Id == byID.ID {
				cp := d
				return &cp, nil
			}
		}
	}
	return nil, nil
}

func (r *memGiftRepo) FindAllDeliveries(_ context.Context, _ ...specification.Specification) ([]*entity.GiftDelivery, error) {
	var out []*entity.GiftDelivery
	for _, d := range r.deliveries {
		cp := d
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memGiftRepo) CreateCenter(_ context.Context, c *entity.SeniorCenter) error {
	r.centers = append(r.centers, *c)
	return nil
}

func (r *memGiftRepo) UpdateCenter(_ context.Context, c *entity.SeniorCenter) error {
	for i := range r.centers {
		if r.centers[i].Id == c.Id {
			r.centers[i] = *c
		}
	}
	return nil
}

func (r *memGiftRepo) DeleteCenter(_ context.Context, id uuid.UUID) error {
	out := r.centers[:0]
	for _, c := range r.centers {
		if c.Id != id {
			out = append(out, c)
		}
	}
	r.centers = out
	return nil
}

func (r *memGiftRepo) FindOneCenter(_ context.Context, specs ...specification.Specification) (*entity.SeniorCenter, error) {
	for _, c := range r.centers {
		for _, spec := range specs {
			if byID, ok := spec.(specification.ByID); ok && c.Id == byID.ID {
				cp := c
				return &cp, nil
			}
		}
	}
	return nil, nil
}

func (r *memGiftRepo) FindAllCenters(_ context.Context, _ ...specification.Specification) ([]*entity.SeniorCenter, error) {
	var out []*entity.SeniorCenter
	for _, c := range r.centers {
		cp := c
		out = append(out, &cp)
	}
	return out, nil
}

// memUow is a single shared unit of work; Begin/Commit only count calls so
// tests can assert the transaction reached Commit.
type memUow struct {
	users    *memUserRepo
	orders   *memOrderRepo
	products *memProductRepo
	gifts    *memGiftRepo
	commits  int
}

func newMemUow() *memUow {
	return &memUow{
		users:    newMemUserRepo(),
		orders:   newMemOrderRepo(),
		products: newMemProductRepo(),
		gifts:    &memGiftRepo{},
	}
}

func (u *memUow) Begin(_ context.Context) error { return nil }
func (u *memUow) Commit() error                 { u.commits++; return nil }
func (u *memUow) Rollback() error               { return nil }

func (u *memUow) UserRepository() contract.UserRepository               { return u.users }
func (u *memUow) ProductRepository() contract.ProductRepository         { return u.products }
func (u *memUow) OrderRepository() contract.OrderRepository             { return u.orders }
func (u *memUow) ReplacementRepository() contract.ReplacementRepository { return nil }
func (u *memUow) SupportRepository() contract.SupportRepository         { return nil }
func (u *memUow) GiftRepository() contract.GiftRepository               { return u.gifts }

type memUowFactory struct {
	uow *memUow
}

func (f *memUowFactory) NewUnitOfWork(_ context.Context) unitofwork.UnitOfWork {
	return f.uow
}

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

// capturePublisher records queued notification payloads.
type capturePublisher struct {
	payloads [][]byte
}

func (p *capturePublisher) Publish(_ context.Context, payload []byte) error {
	p.payloads = append(p.payloads, payload)
	return nil
}
