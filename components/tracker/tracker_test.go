package tracker

import (
	"strings"
	"testing"
	"time"

	"github.com/adammck/arm"
	"github.com/adammck/arm/ik"
	"github.com/adammck/arm/math3d"
	"github.com/adammck/arm/utils"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	epoch = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	home  = math3d.Vector3{X: 0, Y: 1.0, Z: 2.0}

	// Tips the shoulder back past its limit.
	overhead = math3d.Vector3{X: 0, Y: 2.5, Z: 0.9}
)

func solver(t *testing.T, o ik.Overrides) *ik.Solver {
	s, err := ik.New(o)
	require.NoError(t, err)
	return s
}

func TestBootGoesHome(t *testing.T) {
	s := solver(t, ik.Overrides{})
	tr := New(s, home)
	require.NoError(t, tr.Boot())
	assert.Equal(t, home, s.Current())

	st := &arm.State{Target: home}
	require.NoError(t, tr.Tick(epoch, st))

	assert.False(t, st.OutOfBounds)
	assert.Equal(t, home, st.Position)
	assert.InDelta(t, home.Y, st.Tip.Y, 1e-9)
	assert.InDelta(t, home.Z, st.Tip.Z, 1e-9)
	assert.InDelta(t, -7.98, utils.Deg(st.Angles.Shoulder), 0.01)
	assert.InDelta(t, 38.80, utils.Deg(st.Angles.Elbow), 0.01)
	assert.InDelta(t, -30.82, utils.Deg(st.Angles.WristPitch), 0.01)
}

func TestFirstTickHasNoDuration(t *testing.T) {
	s := solver(t, ik.Overrides{ScaleByDt: ik.Bool(true)})
	tr := New(s, home)
	require.NoError(t, tr.Boot())

	st := &arm.State{Target: math3d.Vector3{X: 0, Y: 1.0, Z: 2.5}}

	// Nothing has elapsed yet, so the step is capped at zero.
	require.NoError(t, tr.Tick(epoch, st))
	assert.Equal(t, home, st.Position)

	// A tenth of the remaining 0.5, which is under the 0.1/s cap.
	require.NoError(t, tr.Tick(epoch.Add(time.Second), st))
	assert.InDelta(t, 2.05, st.Position.Z, 1e-9)
	assert.False(t, st.OutOfBounds)
}

func TestBlockedIsLoggedOnce(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	s := solver(t, ik.Overrides{})
	tr := New(s, overhead)
	require.NoError(t, tr.Boot())

	st := &arm.State{Target: overhead}
	for i := 0; i < 3; i++ {
		require.NoError(t, tr.Tick(epoch.Add(time.Duration(i)*time.Second/60), st))
		assert.True(t, st.OutOfBounds)
		assert.Equal(t, ik.ArmState{}, st.Angles)
	}

	warnings := entries(hook, logrus.WarnLevel)
	require.Len(t, warnings, 1)
	assert.True(t, strings.HasPrefix(warnings[0].Message, "blocked: shoulder angle -43.27°"), warnings[0].Message)

	// Move somewhere valid, and the arm should be unblocked.
	s.Goto(home)
	st.Target = home
	require.NoError(t, tr.Tick(epoch.Add(time.Second), st))
	assert.False(t, st.OutOfBounds)

	infos := entries(hook, logrus.InfoLevel)
	require.NotEmpty(t, infos)
	assert.Equal(t, "unblocked", infos[len(infos)-1].Message)
	assert.Len(t, entries(hook, logrus.WarnLevel), 1)
}

func entries(hook *test.Hook, level logrus.Level) []logrus.Entry {
	out := []logrus.Entry{}
	for _, e := range hook.AllEntries() {
		if e.Level == level {
			out = append(out, *e)
		}
	}
	return out
}
