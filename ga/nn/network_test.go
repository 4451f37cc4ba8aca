package nn

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopologyWeightCount(t *testing.T) {
	tests := []struct {
		name     string
		topology Topology
		want     int
	}{
		{name: "no-hidden", topology: Topology{Inputs: 2, Outputs: 1}, want: 1 * (2 + 1)},
		{name: "one-hidden", topology: Topology{Inputs: 2, Outputs: 1, HiddenLayers: 1, NeuronsPerHiddenLayer: 2}, want: 2*3 + 1*3},
		{name: "fleet-brain", topology: Topology{Inputs: 5, Outputs: 3, HiddenLayers: 3, NeuronsPerHiddenLayer: 8}, want: 8*6 + 8*9 + 8*9 + 3*9},
		{name: "hidden-count-ignored-without-layers", topology: Topology{Inputs: 4, Outputs: 2, NeuronsPerHiddenLayer: 7}, want: 2 * 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			net, err := New(tc.topology)
			require.NoError(t, err)
			assert.Equal(t, tc.want, tc.topology.WeightCount())
			assert.Len(t, net.Weights(), tc.want)

			sum := 0
			for _, layer := range net.Layers {
				for _, neuron := range layer.Neurons {
					sum += neuron.Inputs() + 1
				}
			}
			assert.Equal(t, tc.want, sum)
		})
	}
}

func TestNewLayerShapes(t *testing.T) {
	net, err := New(Topology{Inputs: 5, Outputs: 3, HiddenLayers: 2, NeuronsPerHiddenLayer: 4})
	require.NoError(t, err)
	require.Len(t, net.Layers, 3)

	assert.Len(t, net.Layers[0].Neurons, 4)
	assert.Equal(t, 5, net.Layers[0].Neurons[0].Inputs())
	assert.Len(t, net.Layers[1].Neurons, 4)
	assert.Equal(t, 4, net.Layers[1].Neurons[0].Inputs())
	assert.Len(t, net.Layers[2].Neurons, 3)
	assert.Equal(t, 4, net.Layers[2].Neurons[0].Inputs())
}

func TestNewRejectsInvalidTopology(t *testing.T) {
	for _, topology := range []Topology{
		{Inputs: 0, Outputs: 1},
		{Inputs: 1, Outputs: 0},
		{Inputs: 1, Outputs: 1, HiddenLayers: -1},
		{Inputs: 1, Outputs: 1, HiddenLayers: 2, NeuronsPerHiddenLayer: 0},
	} {
		_, err := New(topology)
		assert.ErrorIs(t, err, ErrInvalidTopology, "topology %+v", topology)
	}
}

func TestWeightsRoundTrip(t *testing.T) {
	net, err := New(Topology{Inputs: 3, Outputs: 2, HiddenLayers: 2, NeuronsPerHiddenLayer: 4})
	require.NoError(t, err)
	net.Randomize(rand.New(rand.NewSource(7)))

	before := net.Weights()
	require.NoError(t, net.SetWeights(before))
	assert.Equal(t, before, net.Weights())
}

func TestSetWeightsOrder(t *testing.T) {
	net, err := New(Topology{Inputs: 2, Outputs: 1, HiddenLayers: 1, NeuronsPerHiddenLayer: 2})
	require.NoError(t, err)

	flat := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}
	require.NoError(t, net.SetWeights(flat))

	assert.Equal(t, []float64{1, 2, 3}, net.Layers[0].Neurons[0].Weights)
	assert.Equal(t, []float64{4, 5, 6}, net.Layers[0].Neurons[1].Weights)
	assert.Equal(t, []float64{7, 8, 9}, net.Layers[1].Neurons[0].Weights)

	flat[0] = 100
	assert.Equal(t, 1.0, net.Layers[0].Neurons[0].Weights[0], "network must not alias the input slice")
}

func TestSetWeightsRejectsWrongLength(t *testing.T) {
	net, err := New(Topology{Inputs: 2, Outputs: 1})
	require.NoError(t, err)
	require.NoError(t, net.SetWeights([]float64{1, 1, 1}))

	err = net.SetWeights([]float64{5})
	require.ErrorIs(t, err, ErrWeightCount)
	assert.Equal(t, []float64{1, 1, 1}, net.Weights(), "failed write must leave weights untouched")

	assert.ErrorIs(t, net.SetWeights([]float64{1, 2, 3, 4}), ErrWeightCount)
}

func TestApplyZeroNetworkOutputsHalf(t *testing.T) {
	net, err := New(Topology{Inputs: 4, Outputs: 3, HiddenLayers: 2, NeuronsPerHiddenLayer: 5})
	require.NoError(t, err)

	out, err := net.Apply([]float64{0, 0, 0, 0})
	require.NoError(t, err)
	require.Len(t, out, 3)
	for _, v := range out {
		assert.Equal(t, 0.5, v)
	}
}

func TestApplySingleNeuron(t *testing.T) {
	net, err := New(Topology{Inputs: 2, Outputs: 1})
	require.NoError(t, err)
	require.NoError(t, net.SetWeights([]float64{1.0, 1.0, -1.0}))

	out, err := net.Apply([]float64{1.0, 1.0})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.InDelta(t, Sigmoid(3, 1), out[0], 1e-12)
	assert.InDelta(t, 0.9526, out[0], 1e-4)
}

func TestApplyFeedsLayerOutputsForward(t *testing.T) {
	net, err := New(Topology{Inputs: 1, Outputs: 1, HiddenLayers: 1, NeuronsPerHiddenLayer: 1})
	require.NoError(t, err)
	// hidden: w=2, bias=0 ; output: w=1, bias=0
	require.NoError(t, net.SetWeights([]float64{2, 0, 1, 0}))

	out, err := net.Apply([]float64{0.5})
	require.NoError(t, err)
	hidden := Sigmoid(1.0, 1)
	assert.InDelta(t, Sigmoid(hidden, 1), out[0], 1e-12)
}

func TestApplyInvalidInputSize(t *testing.T) {
	net, err := New(Topology{Inputs: 2, Outputs: 1})
	require.NoError(t, err)

	_, err = net.Apply([]float64{1})
	assert.ErrorIs(t, err, ErrInvalidInputSize)
	_, err = net.Apply([]float64{1, 2, 3})
	assert.ErrorIs(t, err, ErrInvalidInputSize)
}

func TestRandomizeRange(t *testing.T) {
	net, err := New(Topology{Inputs: 5, Outputs: 3, HiddenLayers: 3, NeuronsPerHiddenLayer: 8})
	require.NoError(t, err)
	net.Randomize(rand.New(rand.NewSource(1)))

	nonZero := 0
	for _, w := range net.Weights() {
		assert.Greater(t, w, -1.0)
		assert.Less(t, w, 1.0)
		if w != 0 {
			nonZero++
		}
	}
	assert.Greater(t, nonZero, 0)
}

func TestCloneIsIndependent(t *testing.T) {
	net, err := New(Topology{Inputs: 2, Outputs: 2, HiddenLayers: 1, NeuronsPerHiddenLayer: 3})
	require.NoError(t, err)
	net.Randomize(rand.New(rand.NewSource(3)))

	clone := net.Clone()
	assert.Equal(t, net.Weights(), clone.Weights())
	assert.Equal(t, net.Topology(), clone.Topology())

	clone.Layers[0].Neurons[0].Weights[0] = 42
	assert.NotEqual(t, 42.0, net.Layers[0].Neurons[0].Weights[0])
}

func TestSigmoid(t *testing.T) {
	assert.Equal(t, 0.5, Sigmoid(0, 1))
	assert.InDelta(t, 1/(1+math.Exp(-1.5)), Sigmoid(3, 2), 1e-12)

	prev := Sigmoid(-30, 1)
	for x := -29.5; x <= 30; x += 0.5 {
		cur := Sigmoid(x, 1)
		assert.Greater(t, cur, prev, "sigmoid must be strictly increasing at x=%f", x)
		assert.Greater(t, cur, 0.0)
		assert.Less(t, cur, 1.0)
		prev = cur
	}
}
