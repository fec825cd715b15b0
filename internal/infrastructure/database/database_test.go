package database

import (
	"context"
	"testing"
	"time"

	"plumbing_estimator/pkg/config"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisOptions(t *testing.T) {
	t.Run("url and timeouts", func(t *testing.T) {
		opts, err := redisOptions(config.RedisConfig{
			URL:          "redis://:secret@cache:6380/2",
			DialTimeout:  time.Second,
			ReadTimeout:  2 * time.Second,
			WriteTimeout: 3 * time.Second,
		})
		require.NoError(t, err)
		assert.Equal(t, "cache:6380", opts.Addr)
		assert.Equal(t, "secret", opts.Password)
		assert.Equal(t, 2, opts.DB)
		assert.Equal(t, time.Second, opts.DialTimeout)
		assert.Equal(t, 2*time.Second, opts.ReadTimeout)
		assert.Equal(t, 3*time.Second, opts.WriteTimeout)
	})

	t.Run("missing url", func(t *testing.T) {
		_, err := redisOptions(config.RedisConfig{})
		assert.Error(t, err)
	})

	t.Run("bad url", func(t *testing.T) {
		_, err := redisOptions(config.RedisConfig{URL: "http://nope"})
		assert.ErrorContains(t, err, "parsing redis url")
	})
}

func TestDynamoDBConfig(t *testing.T) {
	cfg, err := NewDynamoDBConfig(context.Background(), config.AWSConfig{
		Region:          "us-west-2",
		AccessKeyID:     "local",
		SecretAccessKey: "local",
	})
	require.NoError(t, err)
	assert.Equal(t, "us-west-2", cfg.Region)

	creds, err := cfg.Credentials.Retrieve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "local", creds.AccessKeyID)
}

func TestEndpointOption(t *testing.T) {
	var o dynamodb.Options
	endpointOption(" http://dynamodb:8000 ")(&o)
	require.NotNil(t, o.BaseEndpoint)
	assert.Equal(t, "http://dynamodb:8000", *o.BaseEndpoint)

	var untouched dynamodb.Options
	endpointOption("")(&untouched)
	assert.Nil(t, untouched.BaseEndpoint)
}
