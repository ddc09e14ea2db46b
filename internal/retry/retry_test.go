package retry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"prai/internal/retry"

	"github.com/stretchr/testify/suite"
)

type RetrySuite struct {
	suite.Suite
}

func (s *RetrySuite) Test_Eventual_Success() {

	calls := 0

	err := retry.Do(
		context.Background(),
		3,
		1*time.Millisecond,
		func() error {
			calls++
			if calls < 2 {
				return errors.New("fail")
			}
			return nil
		},
	)

	s.NoError(err)
	s.Equal(2, calls)
}

func (s *RetrySuite) Test_Exhausts_Attempts() {

	calls := 0
	wanted := errors.New("still failing")

	err := retry.Do(
		context.Background(),
		3,
		1*time.Millisecond,
		func() error {
			calls++
			return wanted
		},
	)

	s.ErrorIs(err, wanted)
	s.Equal(3, calls)
}

func (s *RetrySuite) Test_Stops_On_Cancelled_Context() {

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0

	err := retry.Do(ctx, 3, 1*time.Millisecond, func() error {
		calls++
		return errors.New("fail")
	})

	s.ErrorIs(err, context.Canceled)
	s.Equal(0, calls)
}

func TestRetrySuite(t *testing.T) {
	suite.Run(t, new(RetrySuite))
}
