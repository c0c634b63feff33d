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

package home

import (
	"context"
	"time"

	"k8s.io/apimachinery/pkg/util/wait"

	"github.com/kitchenware/recipebook/pkg/defaults"
	rberrors "github.com/kitchenware/recipebook/pkg/errors"
)

// WaitSettled polls vm until the active query is no longer loading and
// returns the settled view. On timeout it returns the last view observed
// together with a TIMEOUT error.
func WaitSettled(ctx context.Context, vm *ViewModel, timeout time.Duration) (View, error) {
	var last View
	err := wait.PollUntilContextTimeout(ctx, defaults.HomeSettlePollInterval, timeout, true,
		func(ctx context.Context) (bool, error) {
			last = vm.View(ctx)
			return !last.IsLoading, nil
		},
	)
	if err != nil {
		return last, rberrors.WrapWithContext(rberrors.ErrCodeTimeout,
			"recipes did not load in time", err, map[string]any{
				"timeout": timeout.String(),
				"state":   vm.State(),
			})
	}
	return last, nil
}
