package gconf

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/iov-one/mswallet"
	"github.com/iov-one/mswallet/errors"
	"github.com/iov-one/mswallet/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// myConfig serializes itself as a comma separated list.
type myConfig struct {
	Names []string `json:"names"`
}

func (c *myConfig) Marshal() ([]byte, error) {
	return []byte(strings.Join(c.Names, ",")), nil
}

func (c *myConfig) Unmarshal(raw []byte) error {
	c.Names = strings.Split(string(raw), ",")
	return nil
}

func (c *myConfig) Validate() error {
	if len(c.Names) == 0 {
		return errors.Wrap(errors.ErrEmpty, "names")
	}
	return nil
}

func TestSaveLoad(t *testing.T) {
	cases := map[string]struct {
		conf        *myConfig
		wantSaveErr *errors.Error
		wantLoadErr *errors.Error
	}{
		"single value": {
			conf: &myConfig{Names: []string{"Vote"}},
		},
		"many values": {
			conf: &myConfig{Names: []string{"Vote", "Reset"}},
		},
		"invalid configuration cannot be saved": {
			conf:        &myConfig{},
			wantSaveErr: errors.ErrEmpty,
			wantLoadErr: errors.ErrNotFound,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			if err := Save(db, "mypkg", tc.conf); !tc.wantSaveErr.Is(err) {
				t.Fatalf("want %+v save error, got %+v", tc.wantSaveErr, err)
			}
			var got myConfig
			if err := Load(db, "mypkg", &got); !tc.wantLoadErr.Is(err) {
				t.Fatalf("want %+v load error, got %+v", tc.wantLoadErr, err)
			}
			if tc.wantLoadErr == nil {
				assert.Equal(t, tc.conf, &got)
			}
		})
	}
}

func TestInitConfig(t *testing.T) {
	const genesis = `
		{
			"conf": {
				"mypkg": {"names": ["Vote", "Close"]}
			}
		}
	`
	var opts mswallet.Options
	require.NoError(t, json.Unmarshal([]byte(genesis), &opts))

	db := store.MemStore()
	require.NoError(t, InitConfig(db, opts, "mypkg", &myConfig{}))

	var got myConfig
	require.NoError(t, Load(db, "mypkg", &got))
	assert.Equal(t, []string{"Vote", "Close"}, got.Names)

	// packages without a section keep their defaults
	require.NoError(t, InitConfig(db, opts, "otherpkg", &myConfig{}))
	err := Load(db, "otherpkg", &myConfig{})
	assert.True(t, errors.ErrNotFound.Is(err))
}
