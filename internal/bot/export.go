package bot

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"studioquote-bot/internal/pricing"
)

// handleExport renders the current breakdown to a spreadsheet and sends it
// to the chat. The file is regenerated from the live draft every time;
// nothing about the quote is kept once it is sent.
func (b *Bot) handleExport(ctx context.Context, chatID int64) {
	limited, err := b.state.CheckRateLimit(ctx, chatID, "export", b.cfg.ExportRateLimit, b.cfg.ExportRateWindow)
	if err != nil {
		b.logger.Error("Failed to check export rate limit",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
	}
	if limited {
		b.sendError(chatID, "Too many exports, give it a minute.")
		return
	}

	state, err := b.state.Get(ctx, chatID)
	if err != nil {
		b.logAndReportStateError(chatID, "get state", err)
		return
	}

	quote := pricing.Compute(BuildPricingInput(b.catalog, state.Draft))
	if len(quote.Items) == 0 {
		b.sendError(chatID, "Nothing to export yet. Pick a plan first.")
		return
	}

	planLabel := ""
	if plan, ok := b.catalog.FindPlanByKey(pricing.PlanKey(state.Draft.PlanKey)); ok {
		planLabel = plan.Label
	}

	path, err := BuildQuoteWorkbook(quote, planLabel, b.cfg.ExportDir)
	if err != nil {
		b.logger.Error("Failed to build quote workbook",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
		b.sendError(chatID, "Couldn't build the spreadsheet, please try again.")
		return
	}

	doc := tgbotapi.NewDocument(chatID, tgbotapi.FilePath(path))
	doc.Caption = fmt.Sprintf("Quote total: $%.2f", quote.Total)
	if _, err := b.bot.Send(doc); err != nil {
		b.logger.Error("Failed to send quote workbook",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
	}
}

// BuildQuoteWorkbook writes the breakdown into an .xlsx under dir and
// returns the file path.
func BuildQuoteWorkbook(quote pricing.Quote, planLabel, dir string) (string, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Quote"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return "", fmt.Errorf("failed to create sheet: %w", err)
	}

	f.SetCellValue(sheet, "A1", "Plan")
	f.SetCellValue(sheet, "B1", planLabel)
	f.SetCellValue(sheet, "A2", "Generated")
	f.SetCellValue(sheet, "B2", time.Now().Format("2006-01-02 15:04"))

	f.SetCellValue(sheet, "A4", "Item")
	f.SetCellValue(sheet, "B4", "Amount")

	row := 5
	for _, item := range quote.Items {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), item.Name)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), item.Amount)
		row++
	}

	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Total")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", row), quote.Total)

	style, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	f.SetCellStyle(sheet, "A1", "A4", style)
	f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row), style)

	f.SetActiveSheet(index)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	filename := fmt.Sprintf("quote_%s.xlsx", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)

	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("failed to save Excel file: %w", err)
	}

	return path, nil
}
