package profiledb_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/sibeira/profiledb"
	"github.com/katalvlaran/sibeira/spline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixture(t *testing.T, scale float64) *spline.LogLog {
	t.Helper()
	s, err := spline.NewLogLog(
		[]float64{10, 20, 50, 100, 200},
		[]float64{1e-15 * scale, 3e-15 * scale, 5e-15 * scale, 1e-14 * scale, 1.2e-14 * scale},
	)
	require.NoError(t, err)

	return s
}

type backend struct {
	name string
	open func(t *testing.T, dir string) profiledb.Store
}

func backends() []backend {
	open := func(kind string) func(t *testing.T, dir string) profiledb.Store {
		return func(t *testing.T, dir string) profiledb.Store {
			s, err := profiledb.NewStore(kind, dir)
			require.NoError(t, err)
			t.Cleanup(func() { _ = s.Close() })
			return s
		}
	}

	return []backend{
		{profiledb.BackendYAML, open(profiledb.BackendYAML)},
		{profiledb.BackendSQLite, open(profiledb.BackendSQLite)},
		{profiledb.BackendMemory, open(profiledb.BackendMemory)},
	}
}

func key(kind string, dim int) profiledb.Key {
	return profiledb.Key{Species: "Li", BeamEnergy: 40000, Kind: kind, Dimension: dim}
}

func TestStore_NoProfileForSpecies(t *testing.T) {
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			s := b.open(t, t.TempDir())

			_, err := s.Import(context.Background(), key("invalid profile", 0))
			require.ErrorIs(t, err, profiledb.ErrNoProfileForSpecies)
			assert.NotErrorIs(t, err, profiledb.ErrProfileNotFound)
			assert.Contains(t, err.Error(), "there is no profile for Li")
		})
	}
}

func TestStore_ExportImport(t *testing.T) {
	ctx := context.Background()
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			s := b.open(t, t.TempDir())
			want := fixture(t, 1)

			require.NoError(t, s.Export(ctx, key("test", -1), want))
			got, err := s.Import(ctx, key("test", -1))
			require.NoError(t, err)
			assert.Equal(t, want, got)
			assert.Equal(t, want.Evaluate(33), got.Evaluate(33))
		})
	}
}

func TestStore_ProfileNotFound(t *testing.T) {
	ctx := context.Background()
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			s := b.open(t, t.TempDir())
			require.NoError(t, s.Export(ctx, key("test", 1), fixture(t, 1)))

			_, err := s.Import(ctx, key("test", -1))
			require.ErrorIs(t, err, profiledb.ErrProfileNotFound)
			assert.NotErrorIs(t, err, profiledb.ErrNoProfileForSpecies)
			assert.Equal(t, "profiledb: profile not found: test (Tabata OFF)", err.Error())

			require.NoError(t, s.Export(ctx, key("another_test", 1), fixture(t, 1)))
			_, err = s.Import(ctx, key("missing", 1))
			require.ErrorIs(t, err, profiledb.ErrProfileNotFound)
			assert.Equal(t, "profiledb: profile not found: missing (Tabata 1D)", err.Error())

			other := key("test", 1)
			other.BeamEnergy = 60000
			_, err = s.Import(ctx, other)
			assert.ErrorIs(t, err, profiledb.ErrProfileNotFound)
		})
	}
}

func TestStore_PreservesSiblings(t *testing.T) {
	ctx := context.Background()
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			s := b.open(t, t.TempDir())
			p1, p2, p3 := fixture(t, 1), fixture(t, 2), fixture(t, 3)

			require.NoError(t, s.Export(ctx, key("test", 1), p1))
			require.NoError(t, s.Export(ctx, key("test", -1), p2))
			require.NoError(t, s.Export(ctx, key("another", 0), p3))

			for _, tc := range []struct {
				k    profiledb.Key
				want *spline.LogLog
			}{
				{key("test", 1), p1},
				{key("test", -1), p2},
				{key("another", 0), p3},
			} {
				got, err := s.Import(ctx, tc.k)
				require.NoError(t, err, tc.k.String())
				assert.Equal(t, tc.want, got, tc.k.String())
			}

			// Overwrite replaces only the written leaf.
			p4 := fixture(t, 4)
			require.NoError(t, s.Export(ctx, key("test", 1), p4))
			got, err := s.Import(ctx, key("test", 1))
			require.NoError(t, err)
			assert.Equal(t, p4, got)
			got, err = s.Import(ctx, key("test", -1))
			require.NoError(t, err)
			assert.Equal(t, p2, got)
		})
	}
}

func TestStore_Persistence(t *testing.T) {
	ctx := context.Background()
	for _, kind := range []string{profiledb.BackendYAML, profiledb.BackendSQLite} {
		t.Run(kind, func(t *testing.T) {
			dir := filepath.Join(t.TempDir(), "nested", "data")
			want := fixture(t, 1)

			s, err := profiledb.NewStore(kind, dir)
			require.NoError(t, err)
			require.NoError(t, s.Export(ctx, key("beb", 2), want))
			require.NoError(t, s.Close())

			ext := profiledb.YAMLExt
			if kind == profiledb.BackendSQLite {
				ext = profiledb.SQLiteExt
			}
			_, err = os.Stat(profiledb.FileName(dir, "Li", ext))
			require.NoError(t, err, "directory and file are created")

			reopened, err := profiledb.NewStore(kind, dir)
			require.NoError(t, err)
			defer reopened.Close()
			got, err := reopened.Import(ctx, key("beb", 2))
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestStore_Closed(t *testing.T) {
	ctx := context.Background()
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			s := b.open(t, t.TempDir())
			require.NoError(t, s.Close())

			assert.ErrorIs(t, s.Export(ctx, key("beb", 1), fixture(t, 1)), profiledb.ErrClosed)
			_, err := s.Import(ctx, key("beb", 1))
			assert.ErrorIs(t, err, profiledb.ErrClosed)
		})
	}
}

func TestStore_InvalidKey(t *testing.T) {
	ctx := context.Background()
	s := profiledb.NewMemoryStore()

	for _, k := range []profiledb.Key{
		{Species: "", BeamEnergy: 1, Kind: "beb"},
		{Species: "../Li", BeamEnergy: 1, Kind: "beb"},
		{Species: "Li", BeamEnergy: 1, Kind: ""},
	} {
		_, err := s.Import(ctx, k)
		assert.ErrorIs(t, err, profiledb.ErrInvalidKey, "%+v", k)
	}
	assert.ErrorIs(t, s.Export(ctx, key("beb", 1), nil), profiledb.ErrInvalidKey)
}

func TestNewStore_Errors(t *testing.T) {
	_, err := profiledb.NewStore("npy", t.TempDir())
	assert.ErrorIs(t, err, profiledb.ErrUnsupportedBackend)

	_, err = profiledb.NewStore(profiledb.BackendYAML, "")
	assert.ErrorIs(t, err, profiledb.ErrInvalidKey)
}

func TestBeamEnergyKey(t *testing.T) {
	cases := []struct {
		eV   float64
		want string
	}{
		{40000, "40.0"},
		{66666, "66.666"},
		{40, "0.04"},
		{0, "0.0"},
		{100000, "100.0"},
		{1500, "1.5"},
		{0.01, "1e-05"},
		{1e19, "1e+16"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, profiledb.BeamEnergyKey(tc.eV), "%v eV", tc.eV)
	}
}

func TestKeyHelpers(t *testing.T) {
	assert.Equal(t, "OFF", profiledb.TabataLabel(-1))
	assert.Equal(t, "0D", profiledb.TabataLabel(0))
	assert.Equal(t, "3D", profiledb.TabataLabel(3))
	assert.Equal(t, "-1", profiledb.DimensionKey(-1))
	assert.Equal(t, filepath.Join("data", "Li.npy"), profiledb.FileName("data", "Li", "npy"))
	assert.Equal(t, filepath.Join("data", "Li.yaml"), profiledb.FileName("data", "Li", ".yaml"))
	assert.Equal(t, "Li/40.0/beb/2", key("beb", 2).String())
}

func TestCodec(t *testing.T) {
	want := fixture(t, 1)
	data, err := profiledb.EncodeRecord(want)
	require.NoError(t, err)
	got, err := profiledb.DecodeRecord(data)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = profiledb.DecodeRecord([]byte(`{"schema_version": 99}`))
	assert.ErrorIs(t, err, profiledb.ErrVersionMismatch)
}
