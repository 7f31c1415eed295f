package pixorder

import "github.com/unixpickle/mnist"

// FromMNIST binarizes an MNIST data set.
// MNIST intensities are already scaled to [0, 1].
// A zero threshold selects DefaultThreshold.
//
// If maxRows is non-zero, only the first maxRows samples
// are used.
func FromMNIST(ds mnist.DataSet, threshold float64, maxRows int) (*Dataset, error) {
	if threshold == 0 {
		threshold = DefaultThreshold
	}
	samples := ds.Samples
	if maxRows > 0 && maxRows < len(samples) {
		samples = samples[:maxRows]
	}
	rows := make([]Row, len(samples))
	for i, sample := range samples {
		rows[i] = Row{
			ID:    i,
			Label: sample.Label,
			Image: NewBoolImg(sample.Intensities, 1, threshold),
		}
	}
	return NewDataset(MNISTGeometry, rows)
}

// LoadMNIST loads and binarizes the MNIST training or
// testing set.
func LoadMNIST(training bool, threshold float64, maxRows int) (*Dataset, error) {
	if training {
		return FromMNIST(mnist.LoadTrainingDataSet(), threshold, maxRows)
	}
	return FromMNIST(mnist.LoadTestingDataSet(), threshold, maxRows)
}
