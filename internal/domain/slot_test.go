package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCatalog(t *testing.T) {
	t.Run("default working day", func(t *testing.T) {
		catalog, err := BuildCatalog("09:00", "17:00", 60)
		require.NoError(t, err)

		expected := SlotCatalog{
			"09:00 - 10:00",
			"10:00 - 11:00",
			"11:00 - 12:00",
			"12:00 - 13:00",
			"13:00 - 14:00",
			"14:00 - 15:00",
			"15:00 - 16:00",
			"16:00 - 17:00",
		}
		assert.Equal(t, expected, catalog)
	})

	t.Run("slot that would cross close time is dropped", func(t *testing.T) {
		catalog, err := BuildCatalog("09:00", "10:30", 60)
		require.NoError(t, err)
		assert.Equal(t, SlotCatalog{"09:00 - 10:00"}, catalog)
	})

	t.Run("open after close", func(t *testing.T) {
		_, err := BuildCatalog("17:00", "09:00", 60)
		assert.Error(t, err)
	})

	t.Run("window shorter than one slot", func(t *testing.T) {
		_, err := BuildCatalog("09:00", "09:30", 60)
		assert.Error(t, err)
	})

	t.Run("non-positive duration", func(t *testing.T) {
		_, err := BuildCatalog("09:00", "17:00", 0)
		assert.Error(t, err)
	})
}

func TestTimeSlotLabel(t *testing.T) {
	label := TimeSlotLabel("09:00 - 10:00")

	assert.Equal(t, "09:00", label.Start())
	assert.Equal(t, "10:00", label.End())
	assert.True(t, label.Valid())

	assert.False(t, TimeSlotLabel("bogus").Valid())
	assert.False(t, TimeSlotLabel("10:00 - 09:00").Valid())
	assert.False(t, TimeSlotLabel("9am - 10am").Valid())
}

func TestSlotCatalogOrder(t *testing.T) {
	catalog, err := BuildCatalog("09:00", "12:00", 60)
	require.NoError(t, err)

	assert.Equal(t, 0, catalog.IndexOf("09:00 - 10:00"))
	assert.Equal(t, -1, catalog.IndexOf("14:00 - 15:00"))
	assert.True(t, catalog.Contains("10:00 - 11:00"))

	assert.True(t, catalog.IsSuccessor("09:00 - 10:00", "10:00 - 11:00"))
	assert.False(t, catalog.IsSuccessor("09:00 - 10:00", "11:00 - 12:00"))
	assert.False(t, catalog.IsSuccessor("10:00 - 11:00", "09:00 - 10:00"))
	assert.False(t, catalog.IsSuccessor("08:00 - 09:00", "09:00 - 10:00"))
}

func TestIsContiguousRun(t *testing.T) {
	catalog, err := BuildCatalog("09:00", "17:00", 60)
	require.NoError(t, err)

	assert.True(t, catalog.IsContiguousRun(nil))
	assert.True(t, catalog.IsContiguousRun([]TimeSlotLabel{"11:00 - 12:00"}))
	assert.True(t, catalog.IsContiguousRun([]TimeSlotLabel{"09:00 - 10:00", "10:00 - 11:00", "11:00 - 12:00"}))

	assert.False(t, catalog.IsContiguousRun([]TimeSlotLabel{"09:00 - 10:00", "11:00 - 12:00"}))
	assert.False(t, catalog.IsContiguousRun([]TimeSlotLabel{"10:00 - 11:00", "09:00 - 10:00"}))
	assert.False(t, catalog.IsContiguousRun([]TimeSlotLabel{"08:00 - 09:00"}))
}

func TestDecomposeRange(t *testing.T) {
	catalog, err := BuildCatalog("09:00", "17:00", 60)
	require.NoError(t, err)

	t.Run("plain catalog label", func(t *testing.T) {
		run, ok := catalog.DecomposeRange("14:00 - 15:00")
		require.True(t, ok)
		assert.Equal(t, []TimeSlotLabel{"14:00 - 15:00"}, run)
	})

	t.Run("legacy merged range", func(t *testing.T) {
		run, ok := catalog.DecomposeRange("14:00 - 16:00")
		require.True(t, ok)
		assert.Equal(t, []TimeSlotLabel{"14:00 - 15:00", "15:00 - 16:00"}, run)
	})

	t.Run("range outside the catalog", func(t *testing.T) {
		_, ok := catalog.DecomposeRange("18:00 - 20:00")
		assert.False(t, ok)

		_, ok = catalog.DecomposeRange("14:00 - 16:30")
		assert.False(t, ok)
	})
}

func TestMergedLabel(t *testing.T) {
	assert.Equal(t, TimeSlotLabel(""), MergedLabel(nil))
	assert.Equal(t, TimeSlotLabel("09:00 - 10:00"), MergedLabel([]TimeSlotLabel{"09:00 - 10:00"}))
	assert.Equal(t,
		TimeSlotLabel("14:00 - 16:00"),
		MergedLabel([]TimeSlotLabel{"14:00 - 15:00", "15:00 - 16:00"}),
	)
}

func TestSelectionRange(t *testing.T) {
	start, end, hours := SelectionRange([]TimeSlotLabel{"09:00 - 10:00", "10:00 - 11:00", "11:00 - 12:00"})
	assert.Equal(t, "09:00", start)
	assert.Equal(t, "12:00", end)
	assert.Equal(t, 3, hours)

	start, end, hours = SelectionRange(nil)
	assert.Empty(t, start)
	assert.Empty(t, end)
	assert.Zero(t, hours)
}
