package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenSeedsWhenSnapshotMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	s, err := Open(path)
	require.NoError(t, err)

	s.View(func(d *Data) {
		assert.Len(t, d.Users, 2)
		assert.Len(t, d.Products, 5)
		assert.Len(t, d.Tickets, 5)
		assert.Len(t, d.Orders, 3)
		assert.Len(t, d.Payments, 3)
		assert.Len(t, d.Tracking, 2)
	})

	// The snapshot file is written immediately.
	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestSnapshotRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	s, err := Open(path)
	require.NoError(t, err)

	err = s.Update(func(d *Data) error {
		d.Carts["2"] = append(d.Carts["2"], &CartItem{ProductID: "p1", Quantity: 3})
		return nil
	})
	require.NoError(t, err)

	reopened, err := Open(path)
	require.NoError(t, err)

	reopened.View(func(d *Data) {
		require.Len(t, d.Carts["2"], 1)
		assert.Equal(t, "p1", d.Carts["2"][0].ProductID)
		assert.Equal(t, 3, d.Carts["2"][0].Quantity)

		// Password hashes survive the round trip even though the User
		// JSON shape hides them.
		for _, u := range d.Users {
			assert.NotEmpty(t, u.PasswordHash, "user %s lost its password hash", u.ID)
		}

		p := d.FindProduct("p1")
		require.NotNil(t, p)
		assert.Equal(t, 45, p.Stock)
		require.NotNil(t, p.DiscountPrice)
		assert.Equal(t, int64(22999), *p.DiscountPrice)
	})
}

func TestUpdateErrorLeavesStateUntouched(t *testing.T) {
	s, err := Open("")
	require.NoError(t, err)

	wantErr := assert.AnError
	err = s.Update(func(d *Data) error {
		return wantErr
	})
	assert.ErrorIs(t, err, wantErr)
}

func TestFindersReturnNilForUnknownIDs(t *testing.T) {
	s, err := Open("")
	require.NoError(t, err)

	s.View(func(d *Data) {
		assert.Nil(t, d.FindUser("nope"))
		assert.Nil(t, d.FindProduct("nope"))
		assert.Nil(t, d.FindOrder("nope"))
		assert.Nil(t, d.FindTracking("nope"))
		assert.Nil(t, d.FindTicket("nope"))
		assert.Nil(t, d.FindUserByEmail("nope@solar.com"))
	})
}

func TestSeedKeepsStockFlagDerived(t *testing.T) {
	d := Seed()
	for _, p := range d.Products {
		assert.Equal(t, p.Stock > 0, p.InStock, "product %s", p.ID)
	}
}

func TestEffectivePrice(t *testing.T) {
	p := &Product{Price: 1000}
	assert.Equal(t, int64(1000), p.EffectivePrice())

	discounted := int64(800)
	p.DiscountPrice = &discounted
	assert.Equal(t, int64(800), p.EffectivePrice())
}

func TestSyncStock(t *testing.T) {
	p := &Product{Stock: 1}
	p.SyncStock()
	assert.True(t, p.InStock)

	p.Stock = 0
	p.SyncStock()
	assert.False(t, p.InStock)
}
