// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

package prereq

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gorobot-library/traefik/pkg/defaults"
	apperrors "github.com/gorobot-library/traefik/pkg/errors"
	"github.com/gorobot-library/traefik/pkg/version"
)

// fakeEngine answers probes from fixed values and records what was asked.
type fakeEngine struct {
	version    version.Version
	versionErr error
	exists     bool
	existsErr  error

	versionCalls int
	inspected    []string
}

func (f *fakeEngine) Version(_ context.Context) (version.Version, error) {
	f.versionCalls++
	return f.version, f.versionErr
}

func (f *fakeEngine) ImageExists(_ context.Context, ref string) (bool, error) {
	f.inspected = append(f.inspected, ref)
	return f.exists, f.existsErr
}

func TestCheck(t *testing.T) {
	eng := &fakeEngine{version: version.Parse("17.05.0-ce"), exists: true}
	c := &Checker{Engine: eng, BaseImage: defaults.BaseImage}

	err := c.Check(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, eng.versionCalls)
	assert.Equal(t, []string{defaults.BaseImage}, eng.inspected)
}

func TestCheckEngineVersionGate(t *testing.T) {
	tests := []struct {
		raw       string
		supported bool
	}{
		{raw: "17.05.0-ce", supported: true},
		{raw: "18.0.0", supported: true},
		{raw: "25.0.3", supported: true},
		{raw: "17.4.0", supported: false},
		{raw: "16.9.9", supported: false},
		{raw: "1.13.1", supported: false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			eng := &fakeEngine{version: version.Parse(tt.raw), exists: true}
			c := &Checker{Engine: eng, BaseImage: defaults.BaseImage}

			err := c.Check(context.Background())
			if tt.supported {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			var serr *apperrors.StructuredError
			require.ErrorAs(t, err, &serr)
			assert.Equal(t, apperrors.ErrCodeEngineUnsupported, serr.Code)
			assert.Contains(t, err.Error(), "17.05")
			assert.Empty(t, eng.inspected, "image probe must not run after a failed version gate")
		})
	}
}

func TestCheckVersionProbeError(t *testing.T) {
	probeErr := apperrors.New(apperrors.ErrCodeEngineNotFound, "engine version probe failed")
	eng := &fakeEngine{versionErr: probeErr}
	c := &Checker{Engine: eng, BaseImage: defaults.BaseImage}

	err := c.Check(context.Background())
	require.ErrorIs(t, err, probeErr)
	assert.Empty(t, eng.inspected)
}

func TestCheckBaseImageMissing(t *testing.T) {
	eng := &fakeEngine{version: version.Parse("18.0.0"), exists: false}
	c := &Checker{Engine: eng, BaseImage: "gorobot/alpine:3.6"}

	err := c.Check(context.Background())
	require.Error(t, err)

	var serr *apperrors.StructuredError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, apperrors.ErrCodeImageNotFound, serr.Code)
	assert.Contains(t, err.Error(), "gorobot/alpine:3.6")
}

func TestCheckImageProbeError(t *testing.T) {
	probeErr := apperrors.New(apperrors.ErrCodeInternal, "inspect failed")
	eng := &fakeEngine{version: version.Parse("18.0.0"), existsErr: probeErr}
	c := &Checker{Engine: eng, BaseImage: defaults.BaseImage}

	err := c.Check(context.Background())
	require.ErrorIs(t, err, probeErr)
}
