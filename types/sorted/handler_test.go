package sorted_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/cryptonstudio/crypton-sorted-list/types/sorted"
	mocksorted "github.com/cryptonstudio/crypton-sorted-list/types/sorted/mocks"
)

var _ sorted.Handler[int] = &mocksorted.MockHandler[int]{}

func TestHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("changes are reported with positions", func(t *testing.T) {
		handler := mocksorted.NewMockHandler[int](ctrl)
		gomock.InOrder(
			handler.EXPECT().OnAdd(0, sorted.Some(10)),
			handler.EXPECT().OnAdd(1, sorted.Some(20)),
			handler.EXPECT().OnAdd(1, sorted.Some(15)),
			handler.EXPECT().OnAdd(3, sorted.Null[int]()),
			handler.EXPECT().OnRemove(1, sorted.Some(15)),
			handler.EXPECT().OnRemove(2, sorted.Null[int]()),
			handler.EXPECT().OnClear(2),
		)

		l := sorted.NewOrdered[int](sorted.Config{})
		l.SetHandler(handler)
		l.Add(10)
		l.Add(20)
		l.Add(15)
		l.AddNull()
		_, ok := l.Remove(sorted.Some(15))
		require.True(t, ok)
		_, ok = l.Remove(sorted.Some(99))
		require.False(t, ok)
		_, err := l.RemoveAt(2)
		require.NoError(t, err)
		_, err = l.RemoveAt(5)
		require.ErrorIs(t, err, sorted.ErrIndexOutOfRange)
		l.Clear()
		l.Clear()
	})

	t.Run("leading nulls", func(t *testing.T) {
		handler := mocksorted.NewMockHandler[string](ctrl)
		gomock.InOrder(
			handler.EXPECT().OnAdd(0, sorted.Some("b")),
			handler.EXPECT().OnAdd(0, sorted.Null[string]()),
			handler.EXPECT().OnAdd(2, sorted.Some("c")),
			handler.EXPECT().OnAdd(1, sorted.Some("a")),
		)

		l := sorted.NewOrdered[string](sorted.Config{NullPlacement: sorted.NullsLeading})
		l.SetHandler(handler)
		l.AddAll(sorted.Some("b"), sorted.Null[string](), sorted.Some("c"), sorted.Some("a"))
	})

	t.Run("bulk removal", func(t *testing.T) {
		handler := mocksorted.NewMockHandler[int](ctrl)
		l := sorted.NewOrdered[int](sorted.Config{}, 1, 2, 3, 4)
		l.SetHandler(handler)
		gomock.InOrder(
			handler.EXPECT().OnRemove(1, sorted.Some(2)),
			handler.EXPECT().OnRemove(2, sorted.Some(4)),
		)
		require.Equal(t, 2, l.RemoveAll(sorted.Some(4), sorted.Some(2)))

		l.SetHandler(nil)
		l.Add(5)
		require.Equal(t, []int{1, 3, 5}, l.Values())
	})
}
