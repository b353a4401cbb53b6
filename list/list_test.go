package list_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/hoardlib/hoard/list"
)

type ListSuite struct {
	suite.Suite
	l *list.List[int]
}

func (s *ListSuite) SetupTest() {
	s.l = list.New[int]()
}

// forward and backward collect the element sequences of both walks.
func (s *ListSuite) forward() []int {
	out := make([]int, 0, s.l.Len())
	for _, x := range s.l.All() {
		out = append(out, x)
	}

	return out
}

func (s *ListSuite) backward() []int {
	out := make([]int, 0, s.l.Len())
	for _, x := range s.l.Backward() {
		out = append(out, x)
	}

	return out
}

// requireMirror asserts the two directional walks are reverses of each
// other and both visit exactly Len() nodes.
func (s *ListSuite) requireMirror() {
	require := require.New(s.T())
	fwd, bwd := s.forward(), s.backward()
	require.Len(fwd, s.l.Len(), "forward walk must visit Len() nodes")
	require.Len(bwd, s.l.Len(), "backward walk must visit Len() nodes")
	for i := range fwd {
		require.Equal(fwd[i], bwd[len(bwd)-1-i], "walks must mirror at offset %d", i)
	}
}

func (s *ListSuite) TestAppendPrepend() {
	require := require.New(s.T())
	require.NoError(s.l.Append(1))
	require.NoError(s.l.Append(2))
	require.NoError(s.l.Prepend(0))
	require.Equal([]int{0, 1, 2}, s.forward())
	require.Equal(3, s.l.Len())
	s.requireMirror()
}

func (s *ListSuite) TestPopShift() {
	require := require.New(s.T())
	for i := 0; i < 3; i++ {
		require.NoError(s.l.Append(i))
	}

	x, err := s.l.Pop()
	require.NoError(err)
	require.Equal(2, x)

	x, err = s.l.Shift()
	require.NoError(err)
	require.Equal(0, x)
	require.Equal([]int{1}, s.forward())

	_, err = s.l.Pop()
	require.NoError(err)
	_, err = s.l.Pop()
	require.ErrorIs(err, list.ErrEmptyList)
	_, err = s.l.Shift()
	require.ErrorIs(err, list.ErrEmptyList)
	require.True(s.l.IsEmpty())
}

func (s *ListSuite) TestInsertInterior() {
	require := require.New(s.T())
	for _, x := range []int{0, 1, 3} {
		require.NoError(s.l.Append(x))
	}
	require.NoError(s.l.Insert(2, 2))
	require.Equal([]int{0, 1, 2, 3}, s.forward())
	s.requireMirror()

	require.ErrorIs(s.l.Insert(5, 9), list.ErrOutOfRange)
	require.NoError(s.l.Insert(4, 4), "index == Len() appends")
	require.NoError(s.l.Insert(0, -1), "index 0 prepends")
	require.Equal([]int{-1, 0, 1, 2, 3, 4}, s.forward())
	s.requireMirror()
}

func (s *ListSuite) TestRemoveEndpointsAndInterior() {
	require := require.New(s.T())
	for i := 0; i < 5; i++ {
		require.NoError(s.l.Append(i))
	}

	x, err := s.l.Remove(0)
	require.NoError(err)
	require.Equal(0, x, "removing the head endpoint")

	x, err = s.l.Remove(s.l.Len() - 1)
	require.NoError(err)
	require.Equal(4, x, "removing the tail endpoint")

	x, err = s.l.Remove(1)
	require.NoError(err)
	require.Equal(2, x, "removing an interior node")

	require.Equal([]int{1, 3}, s.forward())
	s.requireMirror()

	_, err = s.l.Remove(2)
	require.ErrorIs(err, list.ErrOutOfRange)
}

func (s *ListSuite) TestReverseTwiceRestores() {
	require := require.New(s.T())
	for i := 0; i < 4; i++ {
		require.NoError(s.l.Append(i))
	}
	orig := s.forward()

	require.NoError(s.l.Reverse())
	require.Equal([]int{3, 2, 1, 0}, s.forward())
	s.requireMirror()

	require.NoError(s.l.Reverse())
	require.Equal(orig, s.forward())

	head, err := s.l.Get(0)
	require.NoError(err)
	tail, err := s.l.Get(s.l.Len() - 1)
	require.NoError(err)
	require.Equal(0, head, "double reverse restores the head")
	require.Equal(3, tail, "double reverse restores the tail")
}

func (s *ListSuite) TestReverseEmptyFails() {
	require := require.New(s.T())
	require.ErrorIs(s.l.Reverse(), list.ErrEmptyList)
}

func (s *ListSuite) TestContainsGetSet() {
	require := require.New(s.T())
	for _, x := range []int{10, 20, 30} {
		require.NoError(s.l.Append(x))
	}
	require.True(s.l.Contains(20))
	require.False(s.l.Contains(25))
	require.True(s.l.ContainsFunc(func(v int) bool { return v > 25 }))

	require.NoError(s.l.Set(1, 21))
	x, err := s.l.Get(1)
	require.NoError(err)
	require.Equal(21, x)

	_, err = s.l.Get(3)
	require.ErrorIs(err, list.ErrOutOfRange)
	require.ErrorIs(s.l.Set(3, 0), list.ErrOutOfRange)
}

func (s *ListSuite) TestScenario() {
	require := require.New(s.T())
	// append 1,2,3; prepend 0; insert 4 at index 4; shift; reverse.
	for _, x := range []int{1, 2, 3} {
		require.NoError(s.l.Append(x))
	}
	require.NoError(s.l.Prepend(0))
	require.Equal([]int{0, 1, 2, 3}, s.forward())

	require.NoError(s.l.Insert(4, 4))
	require.Equal([]int{0, 1, 2, 3, 4}, s.forward())

	x, err := s.l.Shift()
	require.NoError(err)
	require.Equal(0, x)
	require.Equal([]int{1, 2, 3, 4}, s.forward())

	require.NoError(s.l.Reverse())
	require.Equal([]int{4, 3, 2, 1}, s.forward())
	s.requireMirror()
}

func (s *ListSuite) TestMixedOperationsKeepLinksSane() {
	require := require.New(s.T())
	// A mixed mutation burst; after every step both walks must mirror.
	steps := []func() error{
		func() error { return s.l.Append(1) },
		func() error { return s.l.Prepend(2) },
		func() error { return s.l.Insert(1, 3) },
		func() error { return s.l.Append(4) },
		func() error { _, err := s.l.Remove(2); return err },
		func() error { _, err := s.l.Shift(); return err },
		func() error { return s.l.Insert(0, 5) },
		func() error { _, err := s.l.Pop(); return err },
	}
	for i, step := range steps {
		require.NoError(step(), "step %d", i)
		s.requireMirror()
	}
}

func TestListSuite(t *testing.T) {
	suite.Run(t, new(ListSuite))
}

func TestNilListReadsAsAbsent(t *testing.T) {
	require := require.New(t)
	var l *list.List[int]

	require.Equal(0, l.Len())
	require.True(l.IsEmpty())
	require.False(l.Contains(1))

	_, err := l.Get(0)
	require.ErrorIs(err, list.ErrNilList)
	require.ErrorIs(l.Append(1), list.ErrNilList)
	require.ErrorIs(l.Reverse(), list.ErrNilList)

	for range l.All() {
		t.Fatal("nil list must yield nothing")
	}
}
