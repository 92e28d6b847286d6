package contact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordAddFindRemovePhone(t *testing.T) {
	r := NewRecord("Alice")

	require.NoError(t, r.AddPhone("1234567890"))
	p, ok := r.FindPhone("1234567890")
	require.True(t, ok)
	assert.Equal(t, Phone("1234567890"), p)

	r.RemovePhone("1234567890")
	_, ok = r.FindPhone("1234567890")
	assert.False(t, ok)
	assert.Empty(t, r.Phones)
}

func TestRecordAddPhoneRejectsInvalid(t *testing.T) {
	r := NewRecord("Alice")

	err := r.AddPhone("12-34")
	require.ErrorIs(t, err, ErrInvalidPhone)
	assert.Empty(t, r.Phones)
}

func TestRecordDuplicatePhones(t *testing.T) {
	r := NewRecord("Alice")
	require.NoError(t, r.AddPhone("1111111111"))
	require.NoError(t, r.AddPhone("2222222222"))
	require.NoError(t, r.AddPhone("1111111111"))

	assert.Equal(t, []Phone{"1111111111", "2222222222", "1111111111"}, r.Phones)

	r.RemovePhone("1111111111")
	assert.Equal(t, []Phone{"2222222222"}, r.Phones)

	r.RemovePhone("9999999999")
	assert.Equal(t, []Phone{"2222222222"}, r.Phones)
}

func TestRecordChangePhone(t *testing.T) {
	t.Run("replaces every match", func(t *testing.T) {
		r := NewRecord("Alice")
		require.NoError(t, r.AddPhone("1111111111"))
		require.NoError(t, r.AddPhone("2222222222"))
		require.NoError(t, r.AddPhone("1111111111"))

		require.NoError(t, r.ChangePhone("1111111111", "3333333333"))
		assert.Equal(t, []Phone{"3333333333", "2222222222", "3333333333"}, r.Phones)
	})

	t.Run("absent old value is a no-op", func(t *testing.T) {
		r := NewRecord("Alice")
		require.NoError(t, r.AddPhone("1111111111"))

		require.NoError(t, r.ChangePhone("5555555555", "3333333333"))
		assert.Equal(t, []Phone{"1111111111"}, r.Phones)
	})

	t.Run("invalid new value", func(t *testing.T) {
		r := NewRecord("Alice")
		require.NoError(t, r.AddPhone("1111111111"))

		err := r.ChangePhone("1111111111", "abc")
		require.ErrorIs(t, err, ErrInvalidPhone)
		assert.Equal(t, []Phone{"1111111111"}, r.Phones)
	})
}

func TestRecordAddBirthday(t *testing.T) {
	r := NewRecord("Bob")

	require.ErrorIs(t, r.AddBirthday("1990-06-05"), ErrInvalidDate)
	assert.Nil(t, r.Birthday)

	require.NoError(t, r.AddBirthday("05.06.1990"))
	require.NotNil(t, r.Birthday)
	assert.Equal(t, "05.06.1990", r.Birthday.String())

	require.NoError(t, r.AddBirthday("01.01.1991"))
	assert.Equal(t, "01.01.1991", r.Birthday.String())
}

func TestRecordString(t *testing.T) {
	r := NewRecord("Alice")
	require.NoError(t, r.AddPhone("1234567890"))
	require.NoError(t, r.AddPhone("0987654321"))

	assert.Equal(t, "Contact name: Alice, phones: 1234567890; 0987654321", r.String())

	require.NoError(t, r.AddBirthday("05.06.1990"))
	assert.Equal(t, "Contact name: Alice, phones: 1234567890; 0987654321, birthday: 05.06.1990", r.String())
}
