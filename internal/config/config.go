package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Dev               bool          `envconfig:"DEV" default:"false"`
	DBPath            string        `envconfig:"DB_PATH" default:"data/funnel-bot.db"`
	TemplatesDir      string        `envconfig:"TEMPLATES_DIR" default:"data/templates"`
	FunnelInterval    time.Duration `envconfig:"FUNNEL_INTERVAL" default:"1m"`
	CampaignInterval  time.Duration `envconfig:"CAMPAIGN_INTERVAL" default:"1m"`
	SendRatePerSecond int           `envconfig:"SEND_RATE_PER_SECOND" default:"25"`

	// Bootstrap bot created on first run when the store holds no bots yet.
	TelegramToken      string `envconfig:"TELEGRAM_TOKEN"`
	DefaultBotName     string `envconfig:"DEFAULT_BOT_NAME" default:"funnel-bot"`
	DefaultBotLanguage string `envconfig:"DEFAULT_BOT_LANGUAGE" default:"en"`

	GoogleCredentialsPath string `envconfig:"GOOGLE_CREDENTIALS_PATH"`
	CalendarID            string `envconfig:"CALENDAR_ID"`
}

func New(ctx context.Context) (*Config, error) {
	res := &Config{}

	err := envconfig.Process("", res)
	if err != nil {
		return nil, fmt.Errorf("envconfig process: %w", err)
	}

	if res.Dev || res.TelegramToken != "" {
		return res, nil
	}

	res.TelegramToken, err = getSSMToken(ctx)
	if err != nil {
		return nil, err
	}

	return res, nil
}

func getSSMToken(ctx context.Context) (string, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return "", fmt.Errorf("load aws config: %w", err)
	}
	ssmClient := ssm.NewFromConfig(cfg)

	param, err := ssmClient.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String("/funnel-bot/prod/telegram-token"),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("get SSM token: %w", err)
	}
	if param.Parameter.Value == nil {
		return "", errors.New("SSM Token not found")
	}

	return *param.Parameter.Value, nil
}
