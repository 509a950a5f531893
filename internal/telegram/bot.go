package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	tb "gopkg.in/telebot.v3"

	"github.com/Roma7-7-7/funnel-bot/internal/dal"
)

// Bot runs the inbound side of one configured bot: a long poller with command,
// callback and text handlers.
type Bot struct {
	bot *tb.Bot

	handler *Handler

	log *slog.Logger
}

func NewBot(conf dal.Bot, funnel Funnel, log *slog.Logger) (*Bot, error) {
	bot, err := tb.NewBot(tb.Settings{
		Token:  conf.Token,
		Poller: &tb.LongPoller{Timeout: 5 * time.Second}, //nolint:mnd // it's ok
	})
	if err != nil {
		return nil, fmt.Errorf("create telegram bot %s: %w", conf.ID, err)
	}

	return &Bot{
		bot: bot,

		handler: NewHandler(conf, funnel, log),

		log: log.With("component", "bot").With("botID", conf.ID),
	}, nil
}

// Telebot exposes the underlying instance so the send registry can reuse the
// same connection for outbound messages.
func (b *Bot) Telebot() *tb.Bot {
	return b.bot
}

func (b *Bot) Start(ctx context.Context) error {
	b.bot.Handle("/start", b.handler.Start(ctx))
	b.bot.Handle("/help", b.handler.Help)

	b.bot.Handle(tb.OnCallback, b.handler.Callback(ctx))
	b.bot.Handle(tb.OnText, b.handler.Text(ctx))

	go func() {
		<-ctx.Done()
		b.log.Info("Stopping bot")
		b.bot.Stop()
	}()

	b.bot.Start()

	return nil
}
