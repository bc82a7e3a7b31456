package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	pgxmockv3 "github.com/pashagolub/pgxmock/v3"

	"github.com/polkiloo/storeadmin/internal/domain/model"
)

func TestInventoryRepository(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &inventoryRepository{db: storage.pool}

	mock.ExpectExec("UPDATE products SET stock_quantity").WithArgs(2, int64(100)).WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))
	if ok, err := repo.RestoreProduct(context.Background(), 100, 2); err != nil || !ok {
		t.Fatalf("unexpected result: ok=%v err=%v", ok, err)
	}

	mock.ExpectExec("UPDATE product_variants SET stock_quantity").WithArgs(3, int64(201)).WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))
	if ok, err := repo.RestoreVariant(context.Background(), 201, 3); err != nil || !ok {
		t.Fatalf("unexpected result: ok=%v err=%v", ok, err)
	}

	mock.ExpectExec("UPDATE products SET stock_quantity").WithArgs(2, int64(101)).WillReturnResult(pgxmockv3.NewResult("UPDATE", 0))
	if ok, err := repo.RestoreProduct(context.Background(), 101, 2); err != nil || ok {
		t.Fatalf("expected missing product counter, got ok=%v err=%v", ok, err)
	}

	mock.ExpectExec("UPDATE product_variants SET stock_quantity").WithArgs(3, int64(202)).WillReturnResult(pgxmockv3.NewResult("UPDATE", 0))
	if ok, err := repo.RestoreVariant(context.Background(), 202, 3); err != nil || ok {
		t.Fatalf("expected missing variant counter, got ok=%v err=%v", ok, err)
	}

	mock.ExpectExec("UPDATE products SET stock_quantity").WithArgs(2, int64(100)).WillReturnError(errors.New("fail"))
	if _, err := repo.RestoreProduct(context.Background(), 100, 2); err == nil {
		t.Fatal("expected error")
	}

	mock.ExpectExec("UPDATE product_variants SET stock_quantity").WithArgs(3, int64(201)).WillReturnError(errors.New("fail"))
	if _, err := repo.RestoreVariant(context.Background(), 201, 3); err == nil {
		t.Fatal("expected error")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestProductRepositorySetActive(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &productRepository{db: storage.pool}

	ids := []int64{1, 2, 3}
	mock.ExpectExec("UPDATE products SET is_active").WithArgs(true, ids).WillReturnResult(pgxmockv3.NewResult("UPDATE", 2))
	n, err := repo.SetActive(context.Background(), ids, true)
	if err != nil || n != 2 {
		t.Fatalf("unexpected result: n=%d err=%v", n, err)
	}

	mock.ExpectExec("UPDATE products SET is_active").WithArgs(false, ids).WillReturnError(errors.New("fail"))
	if _, err := repo.SetActive(context.Background(), ids, false); err == nil {
		t.Fatal("expected error")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestProductRepositoryDelete(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &productRepository{db: storage.pool}

	ids := []int64{5}
	mock.ExpectExec("DELETE FROM product_images").WithArgs(ids).WillReturnResult(pgxmockv3.NewResult("DELETE", 2))
	mock.ExpectExec("DELETE FROM product_variants").WithArgs(ids).WillReturnResult(pgxmockv3.NewResult("DELETE", 1))
	mock.ExpectExec("DELETE FROM products").WithArgs(ids).WillReturnResult(pgxmockv3.NewResult("DELETE", 1))
	n, err := repo.Delete(context.Background(), ids)
	if err != nil || n != 1 {
		t.Fatalf("unexpected result: n=%d err=%v", n, err)
	}

	mock.ExpectExec("DELETE FROM product_images").WithArgs(ids).WillReturnError(errors.New("images"))
	if _, err := repo.Delete(context.Background(), ids); err == nil {
		t.Fatal("expected images error")
	}

	mock.ExpectExec("DELETE FROM product_images").WithArgs(ids).WillReturnResult(pgxmockv3.NewResult("DELETE", 0))
	mock.ExpectExec("DELETE FROM product_variants").WithArgs(ids).WillReturnError(errors.New("variants"))
	if _, err := repo.Delete(context.Background(), ids); err == nil {
		t.Fatal("expected variants error")
	}

	mock.ExpectExec("DELETE FROM product_images").WithArgs(ids).WillReturnResult(pgxmockv3.NewResult("DELETE", 0))
	mock.ExpectExec("DELETE FROM product_variants").WithArgs(ids).WillReturnResult(pgxmockv3.NewResult("DELETE", 0))
	mock.ExpectExec("DELETE FROM products").WithArgs(ids).WillReturnError(errors.New("products"))
	if _, err := repo.Delete(context.Background(), ids); err == nil {
		t.Fatal("expected products error")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestActivityRepository(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := storage.Activity()

	occurred := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	entry := model.ActivityEntry{
		ID:         "8c5c5b7e-4d5c-4f3e-9a43-0d7c6f6f2e11",
		Event:      "bulk.activate",
		Payload:    map[string]any{"scope": "products", "affected": 2},
		OccurredAt: occurred,
	}
	mock.ExpectExec("INSERT INTO activity_log").
		WithArgs(entry.ID, entry.Event, []byte(`{"affected":2,"scope":"products"}`), occurred).
		WillReturnResult(pgxmockv3.NewResult("INSERT", 1))
	if err := repo.Append(context.Background(), entry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mock.ExpectExec("INSERT INTO activity_log").
		WithArgs(entry.ID, entry.Event, pgxmockv3.AnyArg(), occurred).
		WillReturnError(errors.New("insert"))
	if err := repo.Append(context.Background(), entry); err == nil {
		t.Fatal("expected error")
	}

	bad := entry
	bad.Payload = map[string]any{"fn": func() {}}
	if err := repo.Append(context.Background(), bad); err == nil {
		t.Fatal("expected encode error")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}
