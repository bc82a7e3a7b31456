package test

import (
	"context"
	"sort"
	"sync"
	"time"

	domainErrors "github.com/polkiloo/storeadmin/internal/domain/errors"
	"github.com/polkiloo/storeadmin/internal/domain/model"
	"github.com/polkiloo/storeadmin/internal/domain/repository"
)

// Operation names accepted by MemoryStore.FailOn.
const (
	OpGetForUpdate      = "orders.get_for_update"
	OpUpdateStatus      = "orders.update_status"
	OpLineItems         = "orders.line_items"
	OpTransitionMany    = "orders.transition_many"
	OpAppendHistory     = "history.append"
	OpAppendHistoryMany = "history.append_many"
	OpRestoreProduct    = "inventory.restore_product"
	OpRestoreVariant    = "inventory.restore_variant"
	OpSetActive         = "products.set_active"
	OpDeleteProducts    = "products.delete"
)

// ProductRow is the in-memory view of a catalog product.
type ProductRow struct {
	Active bool
	Stock  int
}

// VariantRow is the in-memory view of a product variant.
type VariantRow struct {
	ProductID int64
	Stock     int
}

type memoryState struct {
	orders   map[int64]model.Order
	history  []model.OrderStatusHistoryEntry
	products map[int64]ProductRow
	variants map[int64]VariantRow
	images   map[int64]int64
}

func (s memoryState) clone() memoryState {
	c := memoryState{
		orders:   make(map[int64]model.Order, len(s.orders)),
		history:  append([]model.OrderStatusHistoryEntry(nil), s.history...),
		products: make(map[int64]ProductRow, len(s.products)),
		variants: make(map[int64]VariantRow, len(s.variants)),
		images:   make(map[int64]int64, len(s.images)),
	}
	for k, v := range s.orders {
		v.Items = append([]model.OrderLineItem(nil), v.Items...)
		c.orders[k] = v
	}
	for k, v := range s.products {
		c.products[k] = v
	}
	for k, v := range s.variants {
		c.variants[k] = v
	}
	for k, v := range s.images {
		c.images[k] = v
	}
	return c
}

// MemoryStore is a serializing in-memory UnitOfWork. Each transaction works on a copy of the
// committed state which replaces it only when the callback succeeds.
type MemoryStore struct {
	mu    sync.Mutex
	state memoryState

	FailOn    map[string]error
	Begins    int
	Commits   int
	Rollbacks int
}

// NewMemoryStore constructs an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		state: memoryState{
			orders:   make(map[int64]model.Order),
			products: make(map[int64]ProductRow),
			variants: make(map[int64]VariantRow),
			images:   make(map[int64]int64),
		},
		FailOn: make(map[string]error),
	}
}

// AddOrder seeds an order.
func (s *MemoryStore) AddOrder(order model.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.orders[order.ID] = order
}

// AddProduct seeds a product.
func (s *MemoryStore) AddProduct(id int64, row ProductRow) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.products[id] = row
}

// AddVariant seeds a variant.
func (s *MemoryStore) AddVariant(id int64, row VariantRow) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.variants[id] = row
}

// AddImage seeds a product image.
func (s *MemoryStore) AddImage(id, productID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.images[id] = productID
}

// OrderStatus returns the committed status of an order.
func (s *MemoryStore) OrderStatus(id int64) (model.OrderStatus, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.state.orders[id]
	return o.Status, ok
}

// HistoryFor returns committed history entries of an order.
func (s *MemoryStore) HistoryFor(orderID int64) []model.OrderStatusHistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []model.OrderStatusHistoryEntry
	for _, e := range s.state.history {
		if e.OrderID == orderID {
			result = append(result, e)
		}
	}
	return result
}

// HistoryLen returns the number of committed history entries.
func (s *MemoryStore) HistoryLen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.state.history)
}

// Product returns a committed product row.
func (s *MemoryStore) Product(id int64) (ProductRow, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.state.products[id]
	return p, ok
}

// Variant returns a committed variant row.
func (s *MemoryStore) Variant(id int64) (VariantRow, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.state.variants[id]
	return v, ok
}

// ImagesOf counts committed images of a product.
func (s *MemoryStore) ImagesOf(productID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, pid := range s.state.images {
		if pid == productID {
			n++
		}
	}
	return n
}

// WithinTransaction implements repository.UnitOfWork.
func (s *MemoryStore) WithinTransaction(ctx context.Context, fn func(repository.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Begins++
	tx := &memoryTx{store: s, state: s.state.clone()}
	if err := fn(tx); err != nil {
		s.Rollbacks++
		return err
	}
	s.state = tx.state
	s.Commits++
	return nil
}

// Get implements repository.OrderReader.
func (s *MemoryStore) Get(ctx context.Context, orderID int64) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.state.orders[orderID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	o.Items = append([]model.OrderLineItem(nil), o.Items...)
	return &o, nil
}

// History implements repository.OrderReader.
func (s *MemoryStore) History(ctx context.Context, orderID int64) ([]model.OrderStatusHistoryEntry, error) {
	return s.HistoryFor(orderID), nil
}

func (s *MemoryStore) fail(op string) error {
	return s.FailOn[op]
}

type memoryTx struct {
	store *MemoryStore
	state memoryState
}

func (tx *memoryTx) Orders() repository.OrderRepository        { return memoryOrders{tx} }
func (tx *memoryTx) History() repository.HistoryRepository     { return memoryHistory{tx} }
func (tx *memoryTx) Inventory() repository.InventoryRepository { return memoryInventory{tx} }
func (tx *memoryTx) Products() repository.ProductRepository     { return memoryProducts{tx} }

type memoryOrders struct{ tx *memoryTx }

func (r memoryOrders) GetForUpdate(ctx context.Context, orderID int64) (*model.Order, error) {
	if err := r.tx.store.fail(OpGetForUpdate); err != nil {
		return nil, err
	}
	o, ok := r.tx.state.orders[orderID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return &o, nil
}

func (r memoryOrders) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	if err := r.tx.store.fail(OpUpdateStatus); err != nil {
		return err
	}
	o, ok := r.tx.state.orders[orderID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	o.Status = status
	o.UpdatedAt = time.Now()
	r.tx.state.orders[orderID] = o
	return nil
}

func (r memoryOrders) LineItems(ctx context.Context, orderID int64) ([]model.OrderLineItem, error) {
	if err := r.tx.store.fail(OpLineItems); err != nil {
		return nil, err
	}
	return append([]model.OrderLineItem(nil), r.tx.state.orders[orderID].Items...), nil
}

func (r memoryOrders) TransitionMany(ctx context.Context, orderIDs []int64, from, to model.OrderStatus) ([]int64, error) {
	if err := r.tx.store.fail(OpTransitionMany); err != nil {
		return nil, err
	}
	var changed []int64
	for _, id := range orderIDs {
		o, ok := r.tx.state.orders[id]
		if !ok || o.Status != from {
			continue
		}
		o.Status = to
		o.UpdatedAt = time.Now()
		r.tx.state.orders[id] = o
		changed = append(changed, id)
	}
	sort.Slice(changed, func(i, j int) bool { return changed[i] < changed[j] })
	return changed, nil
}

type memoryHistory struct{ tx *memoryTx }

func (r memoryHistory) Append(ctx context.Context, entry model.OrderStatusHistoryEntry) error {
	if err := r.tx.store.fail(OpAppendHistory); err != nil {
		return err
	}
	entry.ID = int64(len(r.tx.state.history)) + 1
	entry.CreatedAt = time.Now()
	r.tx.state.history = append(r.tx.state.history, entry)
	return nil
}

func (r memoryHistory) AppendMany(ctx context.Context, orderIDs []int64, status model.OrderStatus, note string, adminID int64) error {
	if err := r.tx.store.fail(OpAppendHistoryMany); err != nil {
		return err
	}
	for _, id := range orderIDs {
		r.tx.state.history = append(r.tx.state.history, model.OrderStatusHistoryEntry{
			ID:        int64(len(r.tx.state.history)) + 1,
			OrderID:   id,
			Status:    status,
			Note:      note,
			AdminID:   adminID,
			CreatedAt: time.Now(),
		})
	}
	return nil
}

type memoryInventory struct{ tx *memoryTx }

func (r memoryInventory) RestoreProduct(ctx context.Context, productID int64, quantity int) (bool, error) {
	if err := r.tx.store.fail(OpRestoreProduct); err != nil {
		return false, err
	}
	p, ok := r.tx.state.products[productID]
	if !ok {
		return false, nil
	}
	p.Stock += quantity
	r.tx.state.products[productID] = p
	return true, nil
}

func (r memoryInventory) RestoreVariant(ctx context.Context, variantID int64, quantity int) (bool, error) {
	if err := r.tx.store.fail(OpRestoreVariant); err != nil {
		return false, err
	}
	v, ok := r.tx.state.variants[variantID]
	if !ok {
		return false, nil
	}
	v.Stock += quantity
	r.tx.state.variants[variantID] = v
	return true, nil
}

type memoryProducts struct{ tx *memoryTx }

func (r memoryProducts) SetActive(ctx context.Context, productIDs []int64, active bool) (int64, error) {
	if err := r.tx.store.fail(OpSetActive); err != nil {
		return 0, err
	}
	var n int64
	for _, id := range productIDs {
		p, ok := r.tx.state.products[id]
		if !ok {
			continue
		}
		p.Active = active
		r.tx.state.products[id] = p
		n++
	}
	return n, nil
}

func (r memoryProducts) Delete(ctx context.Context, productIDs []int64) (int64, error) {
	if err := r.tx.store.fail(OpDeleteProducts); err != nil {
		return 0, err
	}
	targets := make(map[int64]struct{}, len(productIDs))
	for _, id := range productIDs {
		targets[id] = struct{}{}
	}
	for imageID, pid := range r.tx.state.images {
		if _, ok := targets[pid]; ok {
			delete(r.tx.state.images, imageID)
		}
	}
	for variantID, v := range r.tx.state.variants {
		if _, ok := targets[v.ProductID]; ok {
			delete(r.tx.state.variants, variantID)
		}
	}
	var n int64
	for id := range targets {
		if _, ok := r.tx.state.products[id]; ok {
			delete(r.tx.state.products, id)
			n++
		}
	}
	return n, nil
}

var _ repository.UnitOfWork = (*MemoryStore)(nil)
var _ repository.OrderReader = (*MemoryStore)(nil)
