package bot

import (
	"os"
	"testing"

	"studioquote-bot/internal/pricing"
)

func TestBuildQuoteWorkbook(t *testing.T) {
	quote := pricing.Quote{
		Items: []pricing.LineItem{
			{Name: "base plan fee", Amount: 139},
			{Name: "travel fee (North York)", Amount: 15},
		},
		Total: 154,
	}

	path, err := BuildQuoteWorkbook(quote, "Solo portrait", t.TempDir())
	if err != nil {
		t.Fatalf("BuildQuoteWorkbook failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("workbook not written: %v", err)
	}
	if info.Size() == 0 {
		t.Error("workbook is empty")
	}
}
