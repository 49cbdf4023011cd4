// Copyright 2026 Hubgate, Inc.
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package github

import (
	"context"
	"time"
)

// FetchUser retrieves a user's profile. The upstream field names already
// match the public projection, so the payload decodes directly.
func (c *GraphQLClient) FetchUser(ctx context.Context, token, login string) (*User, error) {
	var payload struct {
		User *User `json:"user"`
	}
	errs, err := c.do(ctx, token, userQuery, map[string]interface{}{"login": login}, &payload)
	if err != nil {
		return nil, err
	}
	if len(errs) > 0 {
		if c.notFoundOnly(errs) {
			return nil, nil
		}
		return nil, foldErrors(errs)
	}
	return payload.User, nil
}

// wireOrganization carries the upstream membersWithRole count, which the
// public projection renames to members.
type wireOrganization struct {
	ID              string          `json:"id"`
	Login           string          `json:"login"`
	Name            *string         `json:"name"`
	Description     *string         `json:"description"`
	Email           *string         `json:"email"`
	Location        *string         `json:"location"`
	WebsiteURL      *string         `json:"websiteUrl"`
	AvatarURL       string          `json:"avatarUrl"`
	URL             string          `json:"url"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
	Repos           CountConnection `json:"repositories"`
	MembersWithRole CountConnection `json:"membersWithRole"`
}

// FetchOrganization retrieves an organization's profile and reshapes the
// membersWithRole count into the public members field.
func (c *GraphQLClient) FetchOrganization(ctx context.Context, token, login string) (*Organization, error) {
	var payload struct {
		Organization *wireOrganization `json:"organization"`
	}
	errs, err := c.do(ctx, token, organizationQuery, map[string]interface{}{"login": login}, &payload)
	if err != nil {
		return nil, err
	}
	if len(errs) > 0 {
		if c.notFoundOnly(errs) {
			return nil, nil
		}
		return nil, foldErrors(errs)
	}
	if payload.Organization == nil {
		return nil, nil
	}
	w := payload.Organization
	return &Organization{
		ID:          w.ID,
		Login:       w.Login,
		Name:        w.Name,
		Description: w.Description,
		Email:       w.Email,
		Location:    w.Location,
		WebsiteURL:  w.WebsiteURL,
		AvatarURL:   w.AvatarURL,
		URL:         w.URL,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
		Repos:       w.Repos,
		Members:     w.MembersWithRole,
	}, nil
}
