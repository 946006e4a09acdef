// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

// Channel names a feature channel of a legal meme vector.
type Channel string

const (
	ChannelStructural  Channel = "structural"
	ChannelSemantic    Channel = "semantic"
	ChannelTemporal    Channel = "temporal"
	ChannelCultural    Channel = "cultural"
	ChannelEnforcement Channel = "enforcement"
)

// Channels lists all channels in canonical consolidation order.
// Consolidated vectors always concatenate non-empty channels in this order.
var Channels = []Channel{
	ChannelStructural,
	ChannelSemantic,
	ChannelTemporal,
	ChannelCultural,
	ChannelEnforcement,
}

// MemeFeatures holds the extracted feature channels of a legal text.
// A disabled or not-yet-extracted channel is a zero-length slice, never nil
// semantics beyond emptiness; channel length depends only on the extractor
// that produced it, not on the input text.
type MemeFeatures struct {
	Structural  []float64
	Semantic    []float64
	Temporal    []float64
	Cultural    []float64
	Enforcement []float64
}

// Get returns the named channel. Unknown channels return nil.
func (f *MemeFeatures) Get(ch Channel) []float64 {
	switch ch {
	case ChannelStructural:
		return f.Structural
	case ChannelSemantic:
		return f.Semantic
	case ChannelTemporal:
		return f.Temporal
	case ChannelCultural:
		return f.Cultural
	case ChannelEnforcement:
		return f.Enforcement
	}
	return nil
}

// Set replaces the named channel. Unknown channels are ignored.
func (f *MemeFeatures) Set(ch Channel, values []float64) {
	switch ch {
	case ChannelStructural:
		f.Structural = values
	case ChannelSemantic:
		f.Semantic = values
	case ChannelTemporal:
		f.Temporal = values
	case ChannelCultural:
		f.Cultural = values
	case ChannelEnforcement:
		f.Enforcement = values
	}
}

// Empty reports whether every channel is zero-length.
func (f *MemeFeatures) Empty() bool {
	for _, ch := range Channels {
		if len(f.Get(ch)) > 0 {
			return false
		}
	}
	return true
}

// TotalLen returns the summed length of all channels.
func (f *MemeFeatures) TotalLen() int {
	n := 0
	for _, ch := range Channels {
		n += len(f.Get(ch))
	}
	return n
}
