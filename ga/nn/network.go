package nn

import (
	"errors"
	"fmt"
	"math/rand"
)

var (
	// ErrInvalidInputSize is returned by Apply when the input vector length differs from the topology.
	ErrInvalidInputSize = errors.New("invalid input size")
	// ErrWeightCount is returned by SetWeights when the flat vector does not cover every weight.
	ErrWeightCount = errors.New("weight count mismatch")
	// ErrInvalidTopology is returned when a Topology cannot describe a network.
	ErrInvalidTopology = errors.New("invalid topology")
)

// Topology describes the fixed shape of a Network.
type Topology struct {
	Inputs                int
	Outputs               int
	HiddenLayers          int
	NeuronsPerHiddenLayer int
}

// Validate reports whether the topology can be built.
func (t Topology) Validate() error {
	if t.Inputs <= 0 {
		return fmt.Errorf("%w: inputs must be positive, got %d", ErrInvalidTopology, t.Inputs)
	}
	if t.Outputs <= 0 {
		return fmt.Errorf("%w: outputs must be positive, got %d", ErrInvalidTopology, t.Outputs)
	}
	if t.HiddenLayers < 0 {
		return fmt.Errorf("%w: hidden layer count cannot be negative, got %d", ErrInvalidTopology, t.HiddenLayers)
	}
	if t.HiddenLayers > 0 && t.NeuronsPerHiddenLayer <= 0 {
		return fmt.Errorf("%w: hidden layers need at least one neuron each, got %d", ErrInvalidTopology, t.NeuronsPerHiddenLayer)
	}
	return nil
}

// layerShapes returns (neurons, inputsPerNeuron) for every layer, output layer last.
func (t Topology) layerShapes() [][2]int {
	shapes := make([][2]int, 0, t.HiddenLayers+1)
	if t.HiddenLayers > 0 {
		shapes = append(shapes, [2]int{t.NeuronsPerHiddenLayer, t.Inputs})
		for i := 1; i < t.HiddenLayers; i++ {
			shapes = append(shapes, [2]int{t.NeuronsPerHiddenLayer, t.NeuronsPerHiddenLayer})
		}
		shapes = append(shapes, [2]int{t.Outputs, t.NeuronsPerHiddenLayer})
	} else {
		shapes = append(shapes, [2]int{t.Outputs, t.Inputs})
	}
	return shapes
}

// WeightCount is the length of the flat weight vector, bias weights included.
func (t Topology) WeightCount() int {
	total := 0
	for _, shape := range t.layerShapes() {
		total += shape[0] * (shape[1] + 1)
	}
	return total
}

// Neuron holds one weight per input followed by the bias weight.
type Neuron struct {
	Weights []float64
}

// Inputs is the number of non-bias weights.
func (n *Neuron) Inputs() int {
	return len(n.Weights) - 1
}

// Layer is a set of neurons sharing the same input vector.
type Layer struct {
	Neurons []Neuron
}

// Network is a fixed-topology feedforward network: zero or more hidden layers
// followed by exactly one output layer.
type Network struct {
	topology Topology
	Layers   []Layer
}

// New builds a network for the topology with every weight set to zero.
func New(topology Topology) (*Network, error) {
	if err := topology.Validate(); err != nil {
		return nil, err
	}

	shapes := topology.layerShapes()
	layers := make([]Layer, len(shapes))
	for i, shape := range shapes {
		neurons := make([]Neuron, shape[0])
		for j := range neurons {
			neurons[j] = Neuron{Weights: make([]float64, shape[1]+1)}
		}
		layers[i] = Layer{Neurons: neurons}
	}

	return &Network{topology: topology, Layers: layers}, nil
}

// Randomize assigns every weight U1 - U2, a triangular draw on (-1, 1).
func (net *Network) Randomize(rng *rand.Rand) {
	for _, layer := range net.Layers {
		for _, neuron := range layer.Neurons {
			for i := range neuron.Weights {
				neuron.Weights[i] = rng.Float64() - rng.Float64()
			}
		}
	}
}

// Topology returns the shape the network was built with.
func (net *Network) Topology() Topology {
	return net.topology
}

// WeightCount is the length of the vector returned by Weights.
func (net *Network) WeightCount() int {
	return net.topology.WeightCount()
}

// Weights flattens the network layer by layer, neuron by neuron,
// input weights first and the bias weight last.
func (net *Network) Weights() []float64 {
	weights := make([]float64, 0, net.WeightCount())
	for _, layer := range net.Layers {
		for _, neuron := range layer.Neurons {
			weights = append(weights, neuron.Weights...)
		}
	}
	return weights
}

// SetWeights consumes a flat vector in the order produced by Weights.
// The vector must cover every weight exactly; on a length mismatch the
// network is left untouched and ErrWeightCount is returned.
func (net *Network) SetWeights(weights []float64) error {
	if len(weights) != net.WeightCount() {
		return fmt.Errorf("%w: got %d, want %d", ErrWeightCount, len(weights), net.WeightCount())
	}

	count := 0
	for _, layer := range net.Layers {
		for _, neuron := range layer.Neurons {
			count += copy(neuron.Weights, weights[count:])
		}
	}
	return nil
}

// Apply runs a forward pass and returns the output layer's activations.
func (net *Network) Apply(input []float64) ([]float64, error) {
	if len(input) != net.topology.Inputs {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidInputSize, len(input), net.topology.Inputs)
	}

	var output []float64
	for _, layer := range net.Layers {
		output = make([]float64, len(layer.Neurons))
		for i, neuron := range layer.Neurons {
			netInput := 0.0
			for j, value := range input {
				netInput += value * neuron.Weights[j]
			}
			netInput += neuron.Weights[len(neuron.Weights)-1] * Bias
			output[i] = Sigmoid(netInput, ActivationResponse)
		}
		input = output
	}
	return output, nil
}

// Clone returns a deep copy of the network.
func (net *Network) Clone() *Network {
	layers := make([]Layer, len(net.Layers))
	for i, layer := range net.Layers {
		neurons := make([]Neuron, len(layer.Neurons))
		for j, neuron := range layer.Neurons {
			neurons[j] = Neuron{Weights: append([]float64(nil), neuron.Weights...)}
		}
		layers[i] = Layer{Neurons: neurons}
	}
	return &Network{topology: net.topology, Layers: layers}
}
