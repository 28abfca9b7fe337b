//go:build unit

package config

import (
	"errors"
	"io/fs"
	"runtime"
	"testing"

	"github.com/kevinphelps/nglint/configs"
	nglintfs "github.com/kevinphelps/nglint/pkg/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gopkg.in/yaml.v3"
)

const path = "/work/.nglint.yaml"

func newManager(t *testing.T) (*nglintfs.MockFS, Manager) {
	ctrl := gomock.NewController(t)
	mockFS := nglintfs.NewMockFS(ctrl)
	mockFS.EXPECT().ExpandPath(path).Return(path, nil).AnyTimes()
	mockFS.EXPECT().IsNotExist(gomock.Any()).DoAndReturn(func(err error) bool {
		return errors.Is(err, fs.ErrNotExist)
	}).AnyTimes()
	return mockFS, NewManager(mockFS, path)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr error
	}{
		{
			name:   "default config",
			mutate: func(c *Config) {},
		},
		{
			name:    "empty project",
			mutate:  func(c *Config) { c.Project = "" },
			wantErr: ErrProjectEmpty,
		},
		{
			name:    "negative concurrency",
			mutate:  func(c *Config) { c.Concurrency = -1 },
			wantErr: ErrInvalidConcurrency,
		},
		{
			name:    "empty exclude pattern",
			mutate:  func(c *Config) { c.Exclude = append(c.Exclude, "") },
			wantErr: ErrEmptyPattern,
		},
		{
			name:   "no exclude patterns",
			mutate: func(c *Config) { c.Exclude = nil },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)

			err := c.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_Workers(t *testing.T) {
	assert.Equal(t, runtime.NumCPU(), Config{}.Workers())
	assert.Equal(t, 3, Config{Concurrency: 3}.Workers())
}

func TestNewManager_DefaultPath(t *testing.T) {
	manager := NewManager(nglintfs.NewMockFS(gomock.NewController(t)), "")
	assert.Equal(t, DefaultPath, manager.GetConfigPath())
}

func TestManager_GetConfig(t *testing.T) {
	mockFS, manager := newManager(t)
	mockFS.EXPECT().ReadFile(path).Return([]byte("project: ./src/tsconfig.app.json\nconcurrency: 2\n"), nil)

	config, err := manager.GetConfig()

	require.NoError(t, err)
	assert.Equal(t, "./src/tsconfig.app.json", config.Project)
	assert.Equal(t, 2, config.Concurrency)
	assert.Equal(t, Default().Exclude, config.Exclude, "missing fields keep their defaults")
	assert.True(t, config.Color)
}

func TestManager_GetConfig_OverridesLists(t *testing.T) {
	mockFS, manager := newManager(t)
	mockFS.EXPECT().ReadFile(path).Return([]byte("exclude:\n  - \"dist/**\"\ncolor: false\n"), nil)

	config, err := manager.GetConfig()

	require.NoError(t, err)
	assert.Equal(t, []string{"dist/**"}, config.Exclude)
	assert.False(t, config.Color)
}

func TestManager_GetConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		readErr error
		wantErr error
	}{
		{
			name:    "missing file",
			readErr: fs.ErrNotExist,
			wantErr: ErrConfigNotFound,
		},
		{
			name:    "malformed yaml",
			data:    []byte("project: [unterminated\n"),
			wantErr: ErrConfigFileParse,
		},
		{
			name:    "invalid values",
			data:    []byte("concurrency: -4\n"),
			wantErr: ErrInvalidConcurrency,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockFS, manager := newManager(t)
			mockFS.EXPECT().ReadFile(path).Return(tt.data, tt.readErr)

			_, err := manager.GetConfig()
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestManager_GetConfigWithFallback(t *testing.T) {
	t.Run("missing file falls back to defaults", func(t *testing.T) {
		mockFS, manager := newManager(t)
		mockFS.EXPECT().ReadFile(path).Return(nil, fs.ErrNotExist)

		config, err := manager.GetConfigWithFallback()

		require.NoError(t, err)
		assert.Equal(t, Default(), config)
	})

	t.Run("broken file is still an error", func(t *testing.T) {
		mockFS, manager := newManager(t)
		mockFS.EXPECT().ReadFile(path).Return([]byte("project: \"\"\n"), nil)

		_, err := manager.GetConfigWithFallback()

		assert.ErrorIs(t, err, ErrInvalidConfig)
		assert.ErrorIs(t, err, ErrProjectEmpty)
	})
}

func TestManager_SaveConfig(t *testing.T) {
	mockFS, manager := newManager(t)
	config := Default()
	config.Concurrency = 8

	var written []byte
	mockFS.EXPECT().WriteFileAtomic(path, gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ string, data []byte, _ any) error {
			written = data
			return nil
		})

	require.NoError(t, manager.SaveConfig(config))

	var saved Config
	require.NoError(t, yaml.Unmarshal(written, &saved))
	assert.Equal(t, config, saved)
}

func TestManager_SaveConfig_Invalid(t *testing.T) {
	_, manager := newManager(t)

	err := manager.SaveConfig(Config{})

	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestManager_Init(t *testing.T) {
	t.Run("writes the embedded defaults", func(t *testing.T) {
		mockFS, manager := newManager(t)
		mockFS.EXPECT().Exists(path).Return(false, nil)
		mockFS.EXPECT().WriteFileAtomic(path, configs.DefaultConfigYAML, gomock.Any()).Return(nil)

		assert.NoError(t, manager.Init(false))
	})

	t.Run("refuses to overwrite", func(t *testing.T) {
		mockFS, manager := newManager(t)
		mockFS.EXPECT().Exists(path).Return(true, nil)

		assert.ErrorIs(t, manager.Init(false), ErrConfigExists)
	})

	t.Run("force overwrites", func(t *testing.T) {
		mockFS, manager := newManager(t)
		mockFS.EXPECT().WriteFileAtomic(path, configs.DefaultConfigYAML, gomock.Any()).Return(nil)

		assert.NoError(t, manager.Init(true))
	})
}

func TestDefaultConfigYAML(t *testing.T) {
	var config Config
	require.NoError(t, yaml.Unmarshal(configs.DefaultConfigYAML, &config))
	assert.Equal(t, Default(), config)
}
