package models

import "testing"

func TestTableNames(t *testing.T) {
	if got := (Payment{}).TableName(); got != "payments" {
		t.Fatalf("unexpected Payment table name: %s", got)
	}
	if got := (Job{}).TableName(); got != "jobs" {
		t.Fatalf("unexpected Job table name: %s", got)
	}
	if got := (BusinessProfile{}).TableName(); got != "business_profiles" {
		t.Fatalf("unexpected BusinessProfile table name: %s", got)
	}
	if got := (Inspection{}).TableName(); got != "inspections" {
		t.Fatalf("unexpected Inspection table name: %s", got)
	}
	if got := (ApprovedEstimate{}).TableName(); got != "approved_estimates" {
		t.Fatalf("unexpected ApprovedEstimate table name: %s", got)
	}
	if got := (Notification{}).TableName(); got != "notifications" {
		t.Fatalf("unexpected Notification table name: %s", got)
	}
	if got := (AuditLog{}).TableName(); got != "audit_logs" {
		t.Fatalf("unexpected AuditLog table name: %s", got)
	}
}
