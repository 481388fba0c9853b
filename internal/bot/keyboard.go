package bot

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// BOT KEYBOARDS

const (
	BtnPackage      = "8-hour package ($699)"
	BtnHourly       = "Hourly coverage"
	BtnSingleCamera = "Single camera ($100/h)"
	BtnDoubleCamera = "Double camera ($180/h)"
	BtnYes          = "Yes"
	BtnNo           = "No"
	BtnDone         = "✅ Done"
	BtnShowQuote    = "🧾 Show quote"
	BtnExport       = "📄 Export to Excel"
	BtnNewQuote     = "🔁 New quote"
)

func (b *Bot) createPlanKeyboard() tgbotapi.ReplyKeyboardMarkup {
	var rows [][]tgbotapi.KeyboardButton
	for _, plan := range b.catalog.Plans() {
		label := plan.Label
		if !plan.Key.IsWedding() {
			label = fmt.Sprintf("%s ($%.0f)", plan.Label, plan.BasePrice)
		}
		rows = append(rows, tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(label),
		))
	}
	return tgbotapi.NewReplyKeyboard(rows...)
}

func (b *Bot) createBillingModeKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(BtnHourly),
			tgbotapi.NewKeyboardButton(BtnPackage),
		),
	)
}

func (b *Bot) createCameraKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(BtnSingleCamera),
			tgbotapi.NewKeyboardButton(BtnDoubleCamera),
		),
	)
}

func (b *Bot) createDurationKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("1"),
			tgbotapi.NewKeyboardButton("1.5"),
			tgbotapi.NewKeyboardButton("2"),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("3"),
			tgbotapi.NewKeyboardButton("4"),
			tgbotapi.NewKeyboardButton("8"),
		),
	)
}

func (b *Bot) createYesNoKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(BtnYes),
			tgbotapi.NewKeyboardButton(BtnNo),
		),
	)
}

func (b *Bot) createZoneKeyboard() tgbotapi.ReplyKeyboardMarkup {
	var rows [][]tgbotapi.KeyboardButton
	var row []tgbotapi.KeyboardButton
	for _, zone := range b.catalog.Zones() {
		row = append(row, tgbotapi.NewKeyboardButton(zone.Label))
		if len(row) == 2 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	return tgbotapi.NewReplyKeyboard(rows...)
}

func (b *Bot) createExtrasKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(BtnDone),
		),
	)
}

func (b *Bot) createQuoteKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(BtnShowQuote),
			tgbotapi.NewKeyboardButton(BtnExport),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(BtnNewQuote),
		),
	)
}
