package migrations

import (
	"regexp"
	"strings"
	"testing"
)

// Escrow rows are write-once audit records: deleting a listing must not be
// blocked by escrows initiated against it, so the schema may not put a
// foreign key on escrows.listing_id.
func TestEscrowsDoNotBlockListingDelete(t *testing.T) {
	data, err := FS.ReadFile("0001_init.up.sql")
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	ddl := regexp.MustCompile(`(?s)CREATE TABLE IF NOT EXISTS escrows \((.*?)\);`).FindStringSubmatch(string(data))
	if ddl == nil {
		t.Fatal("escrows table definition not found")
	}

	for _, line := range strings.Split(ddl[1], "\n") {
		if strings.Contains(line, "listing_id") && strings.Contains(line, "REFERENCES") {
			t.Errorf("escrows.listing_id must not reference listings: %q", strings.TrimSpace(line))
		}
	}
}
