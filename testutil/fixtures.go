package testutil

// SampleProducts is a small catalog used across tests.
var SampleProducts = []map[string]any{
	{"id": "p1", "sku": "TEA-001", "name": "Green Tea", "price": 4.50, "quantity": 12, "reorder_point": 5},
	{"id": "p2", "sku": "TEA-002", "name": "Black Tea", "price": 3.25, "quantity": 2, "reorder_point": 5},
}

// SampleMessages is a short conversation used across tests.
var SampleMessages = []map[string]any{
	{"id": "m1", "conversation_id": "c1", "sender_id": "u1", "sender_name": "Ana", "content": "Shipment arrived", "read": true},
	{"id": "m2", "conversation_id": "c1", "sender_id": "u2", "sender_name": "Ben", "content": "On my way", "read": false},
}
