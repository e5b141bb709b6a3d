// Copyright 2026 The Ruoom Authors
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

package http

import (
	"context"

	"github.com/ruoomkr/platform/internal/session"
)

// GetUserID returns the signed-in user's ID, or "" outside AuthMiddleware.
func GetUserID(ctx context.Context) string {
	if sess, ok := session.FromContext(ctx); ok {
		return sess.UserID
	}
	return ""
}
