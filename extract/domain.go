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


package extract

// DomainExtractor specializes extraction for one area of law. Its features
// are appended to the enforcement channel when plugged into an Extractor,
// so the channel length stays fixed for a given configuration.
//
// Implementations must be safe for concurrent use after construction.
type DomainExtractor interface {
	// ExtractDomainFeatures computes the domain feature sequence for a text.
	// The sequence length must not depend on the text.
	ExtractDomainFeatures(text string) ([]float64, error)

	// FeatureNames returns one name per feature, in extraction order.
	FeatureNames() []string
}
