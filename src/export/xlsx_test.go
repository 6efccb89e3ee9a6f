package export

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Rayan2bdu/Network-5G-slicing-performance-in-NS3/src/dataset"
	"github.com/Rayan2bdu/Network-5G-slicing-performance-in-NS3/src/types"
)

func sample() *dataset.Unified {
	st := dataset.Table{Rows: []types.MetricRow{
		{Device: "Industrial Robot", ThroughputMbps: 10, PacketLossPct: 0.02, EnergyJ: 5},
		{Device: "Autonomous Drone", ThroughputMbps: 20, PacketLossPct: 0.04, EnergyJ: 6},
	}}
	st.Tag(types.URLLC, types.Static)
	dy := dataset.Table{Rows: []types.MetricRow{{Device: "8K Video", ThroughputMbps: 400, PacketLossPct: math.NaN(), EnergyJ: 2.5}}}
	dy.Tag(types.EMBB, types.DynamicQoS)
	return dataset.Concat(st, dy)
}

func TestWriteWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "summary.xlsx")
	require.NoError(t, WriteWorkbook(path, sample()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(RowsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"Device", "Throughput(Mbps)", "PacketLoss(%)", "Energy(J)", "Configuration", "SliceType"}, rows[0])
	assert.Equal(t, "Industrial Robot", rows[1][0])
	assert.Equal(t, "Static", rows[1][4])
	assert.Equal(t, "URLLC", rows[1][5])
	assert.Equal(t, "Dynamic QoS", rows[3][4])
	assert.Equal(t, "eMBB", rows[3][5])
	assert.Equal(t, "", rows[3][2], "missing value stays blank")

	aggs, err := f.GetRows(AggregatesSheet)
	require.NoError(t, err)
	require.Len(t, aggs, 1+18)
	assert.Equal(t, []string{"URLLC", "Static", "Throughput(Mbps)", "15", "2"}, aggs[1])
	// URLLC Dynamic QoS has no rows: mean left blank, count zero
	assert.Equal(t, "URLLC", aggs[4][0])
	assert.Equal(t, "Dynamic QoS", aggs[4][1])
	assert.Equal(t, "", aggs[4][3])
	assert.Equal(t, "0", aggs[4][4])
}
