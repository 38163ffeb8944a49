package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSiteContent(t *testing.T) {
	t.Run("Exactly one popular tier", func(t *testing.T) {
		popular := 0
		for _, tier := range PricingTiers {
			if tier.Popular {
				popular++
			}
			assert.NotEmpty(t, tier.Features, tier.ID)
		}
		assert.Equal(t, 1, popular)
	})

	t.Run("Social links are absolute https URLs", func(t *testing.T) {
		assert.Len(t, SocialLinks, 5)
		for _, link := range SocialLinks {
			assert.True(t, strings.HasPrefix(link.URL, "https://"), link.Name)
		}
	})

	t.Run("Process steps", func(t *testing.T) {
		assert.NotEmpty(t, ProcessSteps)
		assert.NotEmpty(t, ServiceOfferings)
	})
}

func TestTestimonialInitials(t *testing.T) {
	assert.Equal(t, "TE", Testimonial{Company: "TechFlow Inc."}.Initials())
	assert.Equal(t, "X", Testimonial{Company: "x"}.Initials())
	assert.Equal(t, "ÉC", Testimonial{Company: "école"}.Initials())
}

func TestFindCaseStudy(t *testing.T) {
	cs, ok := FindCaseStudy("2")
	assert.True(t, ok)
	assert.Equal(t, "Manufacturing", cs.Industry)
	assert.Len(t, cs.KeyResults, 3)

	_, ok = FindCaseStudy("99")
	assert.False(t, ok)
}
