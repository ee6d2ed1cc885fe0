package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetEnv_Existing(t *testing.T) {
	t.Setenv("FOO_BAR", "qux")
	val := GetEnv("FOO_BAR", "baz")
	require.Equal(t, "qux", val)
}

func TestGetEnv_Default(t *testing.T) {
	os.Unsetenv("FOO_BAR")
	val := GetEnv("FOO_BAR", "baz")
	require.Equal(t, "baz", val)
}

func TestGetEnvInt(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{"numeric", "42", 42},
		{"padded", " 7 ", 7},
		{"empty", "", 10},
		{"non numeric", "abc", 10},
		{"float", "1.5", 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("APP1_TEST_INT", tt.value)
			require.Equal(t, tt.want, GetEnvInt("APP1_TEST_INT", 10))
		})
	}
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("APP1_TEST_BOOL", "true")
	require.True(t, GetEnvBool("APP1_TEST_BOOL", false))

	t.Setenv("APP1_TEST_BOOL", "0")
	require.False(t, GetEnvBool("APP1_TEST_BOOL", true))

	t.Setenv("APP1_TEST_BOOL", "maybe")
	require.True(t, GetEnvBool("APP1_TEST_BOOL", true))
}

func TestGetPort(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{"unset", "", 8080},
		{"valid", "9090", 9090},
		{"non numeric", "http", 8080},
		{"zero", "0", 8080},
		{"negative", "-1", 8080},
		{"too large", "70000", 8080},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PORT", tt.value)
			require.Equal(t, tt.want, GetPort("PORT", 8080))
		})
	}
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("APP1_FROM_DOTENV=loaded\nAPP1_PRESET=file\n"), 0644))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	t.Setenv("APP1_PRESET", "env")
	t.Setenv("APP1_FROM_DOTENV", "")
	os.Unsetenv("APP1_FROM_DOTENV")

	LoadEnv()
	t.Cleanup(func() { os.Unsetenv("APP1_FROM_DOTENV") })

	require.Equal(t, "loaded", os.Getenv("APP1_FROM_DOTENV"))
	require.Equal(t, "env", os.Getenv("APP1_PRESET"))
}

func TestLoadEnv_NoFile(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	require.NotPanics(t, LoadEnv)
}
