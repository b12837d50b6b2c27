package config

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSSM struct {
	values map[string]string
	err    error
	asked  []string
}

func (f *fakeSSM) GetParameter(_ context.Context, in *ssm.GetParameterInput, _ ...func(*ssm.Options)) (*ssm.GetParameterOutput, error) {
	f.asked = append(f.asked, aws.ToString(in.Name))
	if f.err != nil {
		return nil, f.err
	}
	v, ok := f.values[aws.ToString(in.Name)]
	if !ok {
		return &ssm.GetParameterOutput{}, nil
	}
	return &ssm.GetParameterOutput{Parameter: &types.Parameter{Value: aws.String(v)}}, nil
}

func TestGetters(t *testing.T) {
	cfg := map[string]string{
		"PORT":    "4000",
		"BAD_INT": "four",
		"EMPTY":   "",
		"FLAG":    "true",
		"ORIGINS": "https://a.dev, ,https://b.dev",
	}

	assert.Equal(t, 4000, GetInt(cfg, "PORT", 3000))
	assert.Equal(t, 3000, GetInt(cfg, "BAD_INT", 3000))
	assert.Equal(t, 3000, GetInt(cfg, "MISSING", 3000))
	assert.Equal(t, "fallback", GetString(cfg, "EMPTY", "fallback"))
	assert.Equal(t, "fallback", GetString(nil, "PORT", "fallback"))
	assert.True(t, GetBool(cfg, "FLAG", false))
	assert.False(t, GetBool(cfg, "MISSING", false))
	assert.Equal(t, []string{"https://a.dev", "https://b.dev"}, GetList(cfg, "ORIGINS", nil))
	assert.Equal(t, []string{"*"}, GetList(cfg, "MISSING", []string{"*"}))
}

func TestSplit(t *testing.T) {
	key, value := split("DSN=host=db user=me")
	assert.Equal(t, "DSN", key)
	assert.Equal(t, "host=db user=me", value)

	key, value = split("LONELY")
	assert.Equal(t, "LONELY", key)
	assert.Empty(t, value)
}

func TestResolveSecret(t *testing.T) {
	ctx := context.Background()

	t.Run("environment value", func(t *testing.T) {
		secret, err := ResolveSecret(ctx, map[string]string{"JWT_SECRET": "env-secret"}, nil, "JWT_SECRET", "secret")
		require.NoError(t, err)
		assert.Equal(t, "env-secret", secret)
	})

	t.Run("default value", func(t *testing.T) {
		secret, err := ResolveSecret(ctx, map[string]string{}, nil, "JWT_SECRET", "secret")
		require.NoError(t, err)
		assert.Equal(t, "secret", secret)
	})

	t.Run("ssm overrides environment", func(t *testing.T) {
		client := &fakeSSM{values: map[string]string{"/blog/jwt": "ssm-secret"}}
		cfg := map[string]string{"JWT_SECRET": "env-secret", "JWT_SECRET_SSM_PARAMETER": "/blog/jwt"}

		secret, err := ResolveSecret(ctx, cfg, client, "JWT_SECRET", "secret")
		require.NoError(t, err)
		assert.Equal(t, "ssm-secret", secret)
		assert.Equal(t, []string{"/blog/jwt"}, client.asked)
	})

	t.Run("ssm failure", func(t *testing.T) {
		client := &fakeSSM{err: errors.New("access denied")}
		cfg := map[string]string{"JWT_SECRET_SSM_PARAMETER": "/blog/jwt"}

		_, err := ResolveSecret(ctx, cfg, client, "JWT_SECRET", "secret")
		assert.ErrorContains(t, err, "access denied")
	})

	t.Run("empty ssm parameter", func(t *testing.T) {
		cfg := map[string]string{"JWT_SECRET_SSM_PARAMETER": "/blog/missing"}

		_, err := ResolveSecret(ctx, cfg, &fakeSSM{}, "JWT_SECRET", "secret")
		assert.ErrorContains(t, err, "is empty")
	})

	t.Run("ssm requested without client", func(t *testing.T) {
		cfg := map[string]string{"JWT_SECRET_SSM_PARAMETER": "/blog/jwt"}

		_, err := ResolveSecret(ctx, cfg, nil, "JWT_SECRET", "secret")
		assert.Error(t, err)
	})
}
