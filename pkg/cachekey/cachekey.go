// Package cachekey builds the cache keys and invalidation tags used across
// the resume and job read paths. Keys and tags use disjoint prefixes so a
// tag can never collide with a key.
package cachekey

import (
	"crypto/md5"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"go-resume-backend/internal/domain"
)

const (
	listTagPrefix = "resume.list."
	itemTagPrefix = "resume.item."

	// Job domain mirror.
	JobListTag       = "job_list"
	jobListPrefix    = "jobs_"
	jobItemPrefix    = "job_"
	jobItemTagPrefix = "job_item_"
)

// userSegment renders the optional owner id; unscoped resources share the
// "global" segment.
func userSegment(userID string) string {
	if userID == "" {
		return "global"
	}
	return userID
}

// EntityListKey is the cache key for a resource list view.
func EntityListKey(resource domain.ResourceName, userID string) string {
	return fmt.Sprintf("resume.%s.list.%s", resource, userSegment(userID))
}

// EntityItemKey is the cache key for a single entity view.
func EntityItemKey(resource domain.ResourceName, entityID, userID string) string {
	return fmt.Sprintf("resume.%s.item.%s.%s", resource, entityID, userSegment(userID))
}

// EntityListTag is the invalidation tag covering a resource's list views.
func EntityListTag(resource domain.ResourceName, userID string) string {
	return listTagPrefix + string(resource) + "." + userSegment(userID)
}

// EntityItemTag is the invalidation tag covering a single entity's views.
func EntityItemTag(resource domain.ResourceName, entityID, userID string) string {
	return itemTagPrefix + string(resource) + "." + entityID + "." + userSegment(userID)
}

// JobListKey hashes the (sorted) filter set so every distinct filter
// combination gets its own list entry under the shared job_list tag.
func JobListKey(filters map[string]string) string {
	keys := make([]string, 0, len(filters))
	for k := range filters {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		raw, _ := json.Marshal(map[string]string{k: filters[k]})
		b.Write(raw)
	}
	return jobListPrefix + fmt.Sprintf("%x", md5.Sum([]byte(b.String())))
}

// JobItemKey is the cache key for one job.
func JobItemKey(jobID string) string {
	return jobItemPrefix + jobID
}

// JobItemTag is the invalidation tag for one job.
func JobItemTag(jobID string) string {
	return jobItemTagPrefix + jobID
}
