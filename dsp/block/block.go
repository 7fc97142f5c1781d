// Package block provides the multi-channel sample buffers and processing
// contexts that move audio in and out of processing components.
package block

import "fmt"

// Block is a multi-channel view over per-channel sample slices. Channels
// share no memory; each one is a contiguous []float64.
type Block struct {
	channels   [][]float64
	numSamples int
}

// NewBlock allocates a Block with the given channel count and length.
func NewBlock(numChannels, numSamples int) (*Block, error) {
	if numChannels < 0 {
		return nil, fmt.Errorf("block: channel count must be >= 0: %d", numChannels)
	}
	if numSamples < 0 {
		return nil, fmt.Errorf("block: sample count must be >= 0: %d", numSamples)
	}

	b := &Block{
		channels:   make([][]float64, numChannels),
		numSamples: numSamples,
	}
	for ch := range b.channels {
		b.channels[ch] = make([]float64, numSamples)
	}
	return b, nil
}

// FromSlices wraps existing per-channel slices without copying. The block
// length is the shortest channel; mutations are visible both ways.
func FromSlices(channels [][]float64) *Block {
	n := 0
	for i, ch := range channels {
		if i == 0 || len(ch) < n {
			n = len(ch)
		}
	}
	return &Block{channels: channels, numSamples: n}
}

// NumChannels returns the channel count.
func (b *Block) NumChannels() int {
	return len(b.channels)
}

// NumSamples returns the per-channel sample count.
func (b *Block) NumSamples() int {
	return b.numSamples
}

// Channel returns the samples of channel ch, sliced to the block length.
func (b *Block) Channel(ch int) []float64 {
	return b.channels[ch][:b.numSamples]
}

// Clear zeroes every channel.
func (b *Block) Clear() {
	for _, ch := range b.channels {
		for i := range ch[:b.numSamples] {
			ch[i] = 0
		}
	}
}

// resize adjusts the block to the requested shape, reusing channel slices
// where capacity allows.
func (b *Block) resize(numChannels, numSamples int) {
	if cap(b.channels) >= numChannels {
		b.channels = b.channels[:numChannels]
	} else {
		channels := make([][]float64, numChannels)
		copy(channels, b.channels)
		b.channels = channels
	}
	for ch := range b.channels {
		if cap(b.channels[ch]) >= numSamples {
			b.channels[ch] = b.channels[ch][:numSamples]
		} else {
			b.channels[ch] = make([]float64, numSamples)
		}
	}
	b.numSamples = numSamples
}
