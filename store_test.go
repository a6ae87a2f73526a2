/*------------------------------------------------------------------------------
* oloadgo unit test driver : sqlite store
*-----------------------------------------------------------------------------*/
package oloadgo_test

import (
	"oloadgo"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/* openstore(), saverun(), loadseries(), runs() */
func Test_store(t *testing.T) {
	assert := assert.New(t)
	file := filepath.Join(t.TempDir(), "otl.db")
	st, err := oloadgo.OpenStore(file)
	require.NoError(t, err)
	defer st.Close()

	opt := oloadgo.DefaultOtlOpt()
	req := onsalaRequest()
	req.Start = oloadgo.TimeAdd(req.Start, 0.5)
	out, err := oloadgo.Hardisp(nil, readStation(t, "onsala"), req, &opt)
	require.NoError(t, err)

	id, err := st.SaveRun("ONSALA", oloadgo.CatalogDefaultVersion, opt.Mode, req, out)
	require.NoError(t, err)
	_, err = uuid.Parse(id)
	assert.NoError(err)

	series, err := st.LoadSeries(id)
	require.NoError(t, err)
	assert.Equal(out, series)

	id2, err := st.SaveRun("ONSALA", oloadgo.CatalogDefaultVersion, opt.Mode, req, out[:3])
	require.NoError(t, err)
	assert.NotEqual(id, id2)

	runs, err := st.Runs()
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(id2, runs[0].ID)
	assert.Equal(3, runs[0].Samples)
	assert.Equal(24, runs[1].Samples)
	assert.Equal(int64(req.Start.Time), runs[1].StartTime)
	assert.Equal(0.5, runs[1].StartFrac)
	assert.Equal(3600.0, runs[1].Interval)

	series, err = st.LoadSeries("no-such-run")
	assert.NoError(err)
	assert.Empty(series)
}
