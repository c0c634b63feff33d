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

// Package header provides the common header of recipebook documents.
//
// Every document served by recipebookd or written by the CLI starts with a
// kind, an API version and metadata:
//
//	{
//	  "kind": "HomeView",
//	  "apiVersion": "recipebook/v1",
//	  "metadata": {
//	    "timestamp": "2025-12-30T10:30:00Z",
//	    "version": "v1.0.0",
//	    "url": "/v1/home?q=soup"
//	  },
//	  ...
//	}
//
// Embed Header in a response type:
//
//	type homeDocument struct {
//	    header.Header `json:",inline" yaml:",inline"`
//	    home.View     `json:",inline" yaml:",inline"`
//	}
package header
