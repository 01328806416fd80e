package enums

import "testing"

func TestStockLevelPriority(t *testing.T) {
	ordered := StockLevels()
	for i := 1; i < len(ordered); i++ {
		if ordered[i-1].Priority() >= ordered[i].Priority() {
			t.Fatalf("expected strictly increasing priorities, got %v", ordered)
		}
	}
	if StockLevel("Bogus").Priority() <= StockLevelHigh.Priority() {
		t.Fatal("expected unknown labels to sort last")
	}
}

func TestParseStockLevel(t *testing.T) {
	level, err := ParseStockLevel("Critical")
	if err != nil || level != StockLevelCritical {
		t.Fatalf("ParseStockLevel(Critical) = %s, %v", level, err)
	}
	if _, err := ParseStockLevel("critical"); err == nil {
		t.Fatal("expected case-sensitive parse to fail")
	}
}

func TestParseUserRole(t *testing.T) {
	role, err := ParseUserRole("Admin")
	if err != nil || role != UserRoleAdmin {
		t.Fatalf("ParseUserRole(Admin) = %s, %v", role, err)
	}
	if _, err := ParseUserRole("Root"); err == nil {
		t.Fatal("expected unknown role to fail")
	}
}
