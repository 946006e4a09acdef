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


// Package extract turns raw legal text plus its context into the named
// feature channels of a legal meme vector.
//
// An Extractor is stateless apart from its pattern table, which is compiled
// once at construction; a single instance can be shared read-only across
// concurrent extraction calls. Channels can be disabled independently; a
// disabled channel yields a zero-length sequence, never an error.
//
// Domain-specific extraction is pluggable through the DomainExtractor
// interface. AntiCorruption is the built-in variant, quantifying
// anti-bribery legislation across seven feature categories.
package extract
