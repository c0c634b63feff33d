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

package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/kitchenware/recipebook/pkg/defaults"
	rberrors "github.com/kitchenware/recipebook/pkg/errors"
	"github.com/kitchenware/recipebook/pkg/recipe"
)

// UploadField is the multipart field name of image files.
const UploadField = "files"

// Image is an image file to upload.
type Image struct {
	Name        string
	ContentType string
	Data        []byte
}

// LoadImages reads image files from disk concurrently.
func LoadImages(ctx context.Context, paths []string) ([]Image, error) {
	images := make([]Image, len(paths))
	g, _ := errgroup.WithContext(ctx)
	for i, p := range paths {
		g.Go(func() error {
			data, err := os.ReadFile(p)
			if err != nil {
				return fmt.Errorf("failed to read image %s: %w", p, err)
			}
			images[i] = Image{
				Name:        filepath.Base(p),
				ContentType: http.DetectContentType(data),
				Data:        data,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return images, nil
}

// UploadImages attaches images to a recipe and returns the updated recipe.
func (c *Client) UploadImages(ctx context.Context, id int, images []Image) (*recipe.Recipe, error) {
	if err := checkID("upload", id); err != nil {
		return nil, err
	}
	if len(images) == 0 {
		return nil, rberrors.New(rberrors.ErrCodeInvalidRequest, "no images to upload")
	}
	if len(images) > defaults.MaxRecipeImages {
		return nil, rberrors.Newf(rberrors.ErrCodeInvalidRequest,
			"max %d images allowed, got %d", defaults.MaxRecipeImages, len(images))
	}

	body, contentType, err := encodeImages(images)
	if err != nil {
		return nil, rberrors.Wrap(rberrors.ErrCodeInternal, "upload: failed to encode images", err)
	}

	var out recipe.Recipe
	if err := c.do(ctx, "upload", http.MethodPost, recipePath(id)+"/images", nil, body, contentType, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func encodeImages(images []Image) (io.Reader, string, error) {
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	for _, img := range images {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, UploadField, img.Name))
		ct := img.ContentType
		if ct == "" {
			ct = "application/octet-stream"
		}
		h.Set("Content-Type", ct)

		part, err := mw.CreatePart(h)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(img.Data); err != nil {
			return nil, "", err
		}
	}
	if err := mw.Close(); err != nil {
		return nil, "", err
	}
	return buf, mw.FormDataContentType(), nil
}
