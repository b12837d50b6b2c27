package config

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/rs/zerolog/log"
)

// ParameterGetter is the slice of the SSM API used to read secrets
type ParameterGetter interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

// NewSSMClient builds an SSM client from the default AWS credential chain
func NewSSMClient(ctx context.Context) (*ssm.Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return ssm.NewFromConfig(awsCfg), nil
}

// ResolveSecret returns the secret stored under key. When <key>_SSM_PARAMETER is set the value is
// read (decrypted) from AWS SSM Parameter Store instead of the environment.
func ResolveSecret(ctx context.Context, cfg map[string]string, client ParameterGetter, key, defaultValue string) (string, error) {
	paramName := GetString(cfg, key+"_SSM_PARAMETER", "")
	if paramName == "" {
		return GetString(cfg, key, defaultValue), nil
	}
	if client == nil {
		return "", fmt.Errorf("%s_SSM_PARAMETER is set but no SSM client is available", key)
	}

	out, err := client.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(paramName),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("failed to read SSM parameter %s: %w", paramName, err)
	}
	if out.Parameter == nil || aws.ToString(out.Parameter.Value) == "" {
		return "", fmt.Errorf("SSM parameter %s is empty", paramName)
	}

	log.Info().Str("key", key).Str("parameter", paramName).Msg("Loaded secret from SSM")
	return aws.ToString(out.Parameter.Value), nil
}
