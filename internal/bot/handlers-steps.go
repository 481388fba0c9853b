package bot

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"studioquote-bot/internal/pricing"
)

// One handler per form field. Every handler saves its field, decides the
// next step and prompts for it; the final quote is recomputed from the
// whole draft, so answering a step twice just overwrites the old value.

func (b *Bot) handlePlanSelection(ctx context.Context, chatID int64, text string) {
	plan, ok := b.matchPlanButton(text)
	if !ok {
		b.sendError(chatID, "Please pick a plan from the keyboard.")
		return
	}

	if err := b.state.SetPlan(ctx, chatID, string(plan.Key)); err != nil {
		b.logAndReportStateError(chatID, "set plan", err)
		return
	}

	if plan.Key.IsWedding() {
		msg := tgbotapi.NewMessage(chatID, "How should the wedding coverage be billed?")
		msg.ReplyMarkup = b.createBillingModeKeyboard()
		b.sendMessage(msg)
		b.setStep(ctx, chatID, StepWeddingBilling)
		return
	}

	b.askDuration(ctx, chatID, plan)
}

func (b *Bot) handleWeddingBilling(ctx context.Context, chatID int64, text string) {
	var mode pricing.BillingMode
	switch text {
	case BtnHourly:
		mode = pricing.BillingHourly
	case BtnPackage:
		mode = pricing.BillingPackage
	default:
		b.sendError(chatID, "Please choose hourly coverage or the 8-hour package.")
		return
	}

	if err := b.state.SetBillingMode(ctx, chatID, string(mode)); err != nil {
		b.logAndReportStateError(chatID, "set billing mode", err)
		return
	}

	if mode == pricing.BillingHourly {
		msg := tgbotapi.NewMessage(chatID, "How many cameras?")
		msg.ReplyMarkup = b.createCameraKeyboard()
		b.sendMessage(msg)
		b.setStep(ctx, chatID, StepCameraCount)
		return
	}

	msg := tgbotapi.NewMessage(chatID, "How many hours in total? The package covers 8; anything above is billed as overtime.")
	msg.ReplyMarkup = b.createDurationKeyboard()
	b.sendMessage(msg)
	b.setStep(ctx, chatID, StepDuration)
}

func (b *Bot) handleCameraCount(ctx context.Context, chatID int64, text string) {
	var cameras pricing.CameraMode
	switch text {
	case BtnSingleCamera:
		cameras = pricing.CameraSingle
	case BtnDoubleCamera:
		cameras = pricing.CameraDouble
	default:
		b.sendError(chatID, "Please choose single or double camera.")
		return
	}

	if err := b.state.SetCameraCount(ctx, chatID, string(cameras)); err != nil {
		b.logAndReportStateError(chatID, "set camera count", err)
		return
	}

	msg := tgbotapi.NewMessage(chatID, "How many hours of coverage?")
	msg.ReplyMarkup = b.createDurationKeyboard()
	b.sendMessage(msg)
	b.setStep(ctx, chatID, StepDuration)
}

func (b *Bot) handleDuration(ctx context.Context, chatID int64, text string) {
	hours := ParseDurationHours(text)

	if err := b.state.SetDuration(ctx, chatID, hours); err != nil {
		b.logAndReportStateError(chatID, "set duration", err)
		return
	}

	state, err := b.state.Get(ctx, chatID)
	if err != nil {
		b.logAndReportStateError(chatID, "get state", err)
		return
	}

	if pricing.PlanKey(state.Draft.PlanKey).IsPortrait() {
		msg := tgbotapi.NewMessage(chatID, "Will any pets join the shoot?")
		msg.ReplyMarkup = b.createYesNoKeyboard()
		b.sendMessage(msg)
		b.setStep(ctx, chatID, StepPets)
		return
	}

	b.askTravelZone(ctx, chatID)
}

func (b *Bot) handlePets(ctx context.Context, chatID int64, text string) {
	switch text {
	case BtnYes:
		if err := b.state.SetPets(ctx, chatID, true); err != nil {
			b.logAndReportStateError(chatID, "set pets", err)
			return
		}
		msg := tgbotapi.NewMessage(chatID, fmt.Sprintf("How many pets? ($%.0f each)", pricing.PetFeePerPet))
		b.sendMessage(msg)
		b.setStep(ctx, chatID, StepPetCount)

	case BtnNo:
		if err := b.state.SetPets(ctx, chatID, false); err != nil {
			b.logAndReportStateError(chatID, "set pets", err)
			return
		}
		b.askTravelZone(ctx, chatID)

	default:
		b.sendError(chatID, "Please answer yes or no.")
	}
}

func (b *Bot) handlePetCount(ctx context.Context, chatID int64, text string) {
	count := ParsePetCount(text)

	if err := b.state.SetPetCount(ctx, chatID, count); err != nil {
		b.logAndReportStateError(chatID, "set pet count", err)
		return
	}

	b.askTravelZone(ctx, chatID)
}

func (b *Bot) handleTravelZone(ctx context.Context, chatID int64, text string) {
	zone, ok := b.catalog.FindZoneByLabel(text)
	if !ok {
		b.sendError(chatID, "Please pick a location from the keyboard.")
		return
	}

	if err := b.state.SetTravelZone(ctx, chatID, zone.Label); err != nil {
		b.logAndReportStateError(chatID, "set travel zone", err)
		return
	}

	msg := tgbotapi.NewMessage(chatID,
		"Any extra charges? Send one per line as `name amount` (e.g. `album 50`, a negative amount works as a discount), or press "+BtnDone+".")
	msg.ReplyMarkup = b.createExtrasKeyboard()
	b.sendMessage(msg)
	b.setStep(ctx, chatID, StepExtras)
}

func (b *Bot) handleExtras(ctx context.Context, chatID int64, text string) {
	if text == BtnDone {
		b.setStep(ctx, chatID, StepQuote)
		b.sendQuote(ctx, chatID)
		return
	}

	name, amount, ok := ParseExtraLine(text)
	if !ok {
		b.sendError(chatID, "Couldn't read that line. Use `name amount`, like `album 50`.")
		return
	}

	if err := b.state.AddExtra(ctx, chatID, name, amount); err != nil {
		b.logAndReportStateError(chatID, "add extra", err)
		return
	}

	state, err := b.state.Get(ctx, chatID)
	if err != nil {
		b.logAndReportStateError(chatID, "get state", err)
		return
	}

	quote := pricing.Compute(BuildPricingInput(b.catalog, state.Draft))
	b.sendMessage(tgbotapi.NewMessage(chatID, FormatRunningTotal(quote)))
}

func (b *Bot) handleQuoteMenu(ctx context.Context, chatID int64, text string) {
	switch text {
	case BtnShowQuote:
		b.sendQuote(ctx, chatID)
	case BtnExport:
		b.handleExport(ctx, chatID)
	case BtnNewQuote:
		b.HandleStart(ctx, chatID)
	default:
		b.sendError(chatID, "Use the buttons, /rate to adjust overtime billing, or /start for a new quote.")
	}
}

func (b *Bot) askDuration(ctx context.Context, chatID int64, plan pricing.Plan) {
	msg := tgbotapi.NewMessage(chatID, fmt.Sprintf(
		"How many hours? %s includes %.0f hour(s); overtime is $%.0f per started half hour.",
		plan.Label, plan.IncludedDuration, plan.OvertimeRatePerHalfHour))
	msg.ReplyMarkup = b.createDurationKeyboard()
	b.sendMessage(msg)
	b.setStep(ctx, chatID, StepDuration)
}

func (b *Bot) askTravelZone(ctx context.Context, chatID int64) {
	msg := tgbotapi.NewMessage(chatID, "Where is the shoot?")
	msg.ReplyMarkup = b.createZoneKeyboard()
	b.sendMessage(msg)
	b.setStep(ctx, chatID, StepTravelZone)
}

// matchPlanButton resolves a plan keyboard press. Buttons carry the base
// price suffix, so a prefix match against the label is enough.
func (b *Bot) matchPlanButton(text string) (pricing.Plan, bool) {
	if plan, ok := b.catalog.FindPlanByLabel(text); ok {
		return plan, true
	}
	for _, plan := range b.catalog.Plans() {
		if strings.HasPrefix(text, plan.Label+" (") {
			return plan, true
		}
	}
	return pricing.Plan{}, false
}

func (b *Bot) setStep(ctx context.Context, chatID int64, step string) {
	if err := b.state.SetStep(ctx, chatID, step); err != nil {
		b.logger.Error("Failed to set step",
			zap.Int64("chat_id", chatID),
			zap.String("step", step),
			zap.Error(err))
	}
}

func (b *Bot) logAndReportStateError(chatID int64, action string, err error) {
	b.logger.Error("State update failed",
		zap.Int64("chat_id", chatID),
		zap.String("action", action),
		zap.Error(err))
	b.sendError(chatID, "Something went wrong, please try again.")
}
