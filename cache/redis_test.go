package cache

import (
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
)

var errConn = errors.New("connection refused")

func TestRedisCache_GetHit(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	c := NewRedisCacheFromClient(db, 3600, "salin:")

	mock.ExpectGet("salin:section:common:tl").SetVal(`{"appName":"Tanggapan"}`)

	val, ok := c.Get("section:common:tl")
	if !ok {
		t.Error("Expected cache hit")
	}
	if val != `{"appName":"Tanggapan"}` {
		t.Errorf("Expected cached section, got %q", val)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("Unmet expectations: %v", err)
	}
}

func TestRedisCache_GetMiss(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	c := NewRedisCacheFromClient(db, 3600, "salin:")

	mock.ExpectGet("salin:mykey").RedisNil()

	val, ok := c.Get("mykey")
	if ok {
		t.Error("Expected cache miss")
	}
	if val != "" {
		t.Errorf("Expected empty string, got %q", val)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("Unmet expectations: %v", err)
	}
}

func TestRedisCache_GetErrorReadsAsMiss(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	c := NewRedisCacheFromClient(db, 3600, "salin:")

	mock.ExpectGet("salin:mykey").SetErr(errConn)

	if _, ok := c.Get("mykey"); ok {
		t.Error("A redis error should read as a miss")
	}
}

func TestRedisCache_SetUsesTTL(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	c := NewRedisCacheFromClient(db, DefaultTTLSeconds, "salin:")

	mock.ExpectSet("salin:mykey", "myvalue", 24*time.Hour).SetVal("OK")

	if err := c.Set("mykey", "myvalue"); err != nil {
		t.Errorf("Set failed: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("Unmet expectations: %v", err)
	}
}

func TestRedisCache_DefaultKeyPrefix(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	// Empty prefix falls back to "salin:"
	c := NewRedisCacheFromClient(db, 3600, "")

	mock.ExpectGet("salin:hash123:tl").SetVal("translated")

	val, ok := c.Get("hash123:tl")
	if !ok || val != "translated" {
		t.Errorf("Expected 'translated', got %q (ok=%v)", val, ok)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("Unmet expectations: %v", err)
	}
}
