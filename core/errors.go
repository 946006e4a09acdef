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

import "errors"

// Domain validation errors
var (
	// ErrFeaturesNotExtracted indicates an operation that needs the
	// consolidated vector was called before extraction ran.
	ErrFeaturesNotExtracted = errors.New("features not extracted")

	// ErrNoFeatures indicates consolidation was attempted with every
	// feature channel empty.
	ErrNoFeatures = errors.New("no features extracted")

	// ErrInvalidFeatureValue indicates extraction produced a NaN or
	// infinite value.
	ErrInvalidFeatureValue = errors.New("invalid feature value")

	// ErrInvalidLegalFamily indicates an unrecognized legal family name.
	ErrInvalidLegalFamily = errors.New("invalid legal family")

	// ErrEmptyJurisdiction indicates the Jurisdiction field is empty.
	ErrEmptyJurisdiction = errors.New("jurisdiction cannot be empty")

	// ErrAmendmentBeforeEnactment indicates an amendment date earlier
	// than the enactment date.
	ErrAmendmentBeforeEnactment = errors.New("amendment date precedes enactment date")

	// ErrInvalidDate indicates a date string that is not ISO-8601.
	ErrInvalidDate = errors.New("invalid date")
)
