package main

// LinkedIn search-feed DOM selectors.
// These are isolated here because LinkedIn changes its markup frequently.
// Inspect https://www.linkedin.com/search/results/content/ in DevTools to
// verify/update when extraction starts coming back empty.

const (
	// One rendered post in the search feed.
	selectorPostWrapper = `div.feed-shared-update-v2`

	// Link to the post's detail page; its href carries the activity URN.
	selectorDetailLink = `a.update-components-mini-update-v2__link-to-details-page`

	// Author block inside a post.
	selectorActorContainer = `div.update-components-actor__container`
	selectorActorTitle     = `span.update-components-actor__title span[dir="ltr"]`
	selectorActorLink      = `a.update-components-actor__meta-link`
	selectorActorHeadline  = `span.update-components-actor__description`

	// Post body text.
	selectorPostText = `div.update-components-text`

	// Reaction counts.
	selectorSocialCounts  = `div.social-details-social-counts`
	selectorReactionsItem = `li.social-details-social-counts__reactions button`

	// Navigation bar; present once cookie login has taken effect.
	selectorGlobalNav = `#global-nav`
)

// activityURNMarker prefixes the numeric activity ID in both detail-page
// hrefs and the wrapper's data-urn attribute.
const activityURNMarker = "urn:li:activity:"
