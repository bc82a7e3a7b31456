package model

import "testing"

func TestOrderStatusValues(t *testing.T) {
	cases := []struct {
		name  string
		got   OrderStatus
		value string
	}{
		{"pending", OrderStatusPending, "pending"},
		{"confirmed", OrderStatusConfirmed, "confirmed"},
		{"processing", OrderStatusProcessing, "processing"},
		{"shipped", OrderStatusShipped, "shipped"},
		{"delivered", OrderStatusDelivered, "delivered"},
		{"cancelled", OrderStatusCancelled, "cancelled"},
		{"refunded", OrderStatusRefunded, "refunded"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if string(tc.got) != tc.value {
				t.Fatalf("expected %s, got %s", tc.value, tc.got)
			}
			if !tc.got.Valid() {
				t.Fatalf("expected %s to be valid", tc.got)
			}
		})
	}

	for _, bad := range []OrderStatus{"", "PENDING", "archived"} {
		if bad.Valid() {
			t.Fatalf("expected %q to be invalid", bad)
		}
	}
}

func TestCapabilitySet(t *testing.T) {
	set := NewCapabilitySet(CapabilityManageOrders)
	if !set.Has(CapabilityManageOrders) {
		t.Fatalf("expected manage_orders capability")
	}
	if set.Has(CapabilityManageProducts) {
		t.Fatalf("did not expect manage_products capability")
	}

	var empty CapabilitySet
	if empty.Has(CapabilityManageOrders) {
		t.Fatalf("nil set must deny everything")
	}
}

func TestParseCapabilities(t *testing.T) {
	set := ParseCapabilities(" manage_products, ,MANAGE_ORDERS ")
	if len(set) != 2 {
		t.Fatalf("expected 2 capabilities, got %d", len(set))
	}
	if !set.Has(CapabilityManageProducts) || !set.Has(CapabilityManageOrders) {
		t.Fatalf("unexpected capability set: %v", set)
	}

	if got := ParseCapabilities(""); len(got) != 0 {
		t.Fatalf("expected empty set, got %v", got)
	}
}
