package bot

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"studioquote-bot/internal/pricing"
)

func (b *Bot) handleCommand(ctx context.Context, chatID int64, command, args string) {
	switch command {
	case "start", "reset":
		b.HandleStart(ctx, chatID)
	case "help":
		b.HandleHelp(ctx, chatID)
	case "quote":
		b.sendQuote(ctx, chatID)
	case "export":
		b.handleExport(ctx, chatID)
	case "rate":
		b.handleRate(ctx, chatID, args)
	default:
		b.HandleUnknownCommand(ctx, chatID)
	}
}

func (b *Bot) HandleStart(ctx context.Context, chatID int64) {
	if err := b.state.Clear(ctx, chatID); err != nil {
		b.logger.Error("Failed to clear state",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
	}

	msg := tgbotapi.NewMessage(chatID, `Hi! 👋 I put together price quotes for photo shoots.

Pick a plan to get started:`)
	msg.ReplyMarkup = b.createPlanKeyboard()
	b.sendMessage(msg)

	if err := b.state.SetStep(ctx, chatID, StepPlanSelection); err != nil {
		b.logger.Error("Failed to set plan selection step",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
	}
}

func (b *Bot) HandleHelp(ctx context.Context, chatID int64) {
	helpText := `Available commands:
	/start - Start a new quote
	/quote - Show the current price breakdown
	/rate <n> - Override the overtime rate (e.g. /rate 50, /rate 0, /rate off)
	/export - Get the breakdown as a spreadsheet
	/reset - Start over
	/help - Show this help`

	msg := tgbotapi.NewMessage(chatID, helpText)
	b.sendMessage(msg)
}

func (b *Bot) HandleUnknownCommand(ctx context.Context, chatID int64) {
	b.sendError(chatID, "Unknown command. Use /start to begin a quote.")
}

func (b *Bot) handleDefault(ctx context.Context, chatID int64) {
	b.sendError(chatID, "I didn't get that. Please use the buttons, or /start to begin again.")
}

// handleRate sets or clears the custom overtime rate. The override swaps
// overtime billing from half-hour blocks to a continuous hourly rate, and
// a rate of 0 is honored as "overtime is free".
func (b *Bot) handleRate(ctx context.Context, chatID int64, args string) {
	if args == "" {
		state, err := b.state.Get(ctx, chatID)
		if err == nil && state.Draft.CustomOvertimeRate != nil {
			b.sendMessage(tgbotapi.NewMessage(chatID, fmt.Sprintf(
				"Custom overtime rate: $%.2f/h. Use /rate <amount> to change it or /rate off to go back to standard billing.",
				*state.Draft.CustomOvertimeRate)))
			return
		}
		b.sendMessage(tgbotapi.NewMessage(chatID,
			"No custom overtime rate set. Use /rate <amount> to set one."))
		return
	}

	rate, ok := ParseOvertimeRate(args)
	if !ok {
		b.sendError(chatID, "Couldn't read that rate. Try /rate 50 or /rate off.")
		return
	}

	if err := b.state.SetCustomRate(ctx, chatID, rate); err != nil {
		b.logger.Error("Failed to set custom rate",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
		b.sendError(chatID, "Couldn't save the rate, please try again.")
		return
	}

	if rate == nil {
		b.sendMessage(tgbotapi.NewMessage(chatID, "Custom overtime rate cleared, standard billing applies."))
	} else {
		b.sendMessage(tgbotapi.NewMessage(chatID, fmt.Sprintf(
			"Overtime will be billed at $%.2f per hour.", *rate)))
	}

	b.sendQuote(ctx, chatID)
}

// sendQuote recomputes the breakdown from the stored draft and renders it.
func (b *Bot) sendQuote(ctx context.Context, chatID int64) {
	state, err := b.state.Get(ctx, chatID)
	if err != nil {
		b.logger.Error("Failed to get user state",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
		b.sendError(chatID, "Something went wrong, please try /start again.")
		return
	}

	quote := pricing.Compute(BuildPricingInput(b.catalog, state.Draft))

	msg := tgbotapi.NewMessage(chatID, FormatQuote(quote))
	if len(quote.Items) > 0 {
		msg.ReplyMarkup = b.createQuoteKeyboard()
	}
	b.sendMessage(msg)
}
