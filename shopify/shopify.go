package shopify

import (
	"fmt"
	"strings"

	"github.com/theabdulsaboor/Vercel-Shopify-App/helpers"
)

const AccessTokenHeader = "X-Shopify-Access-Token"

const variantGIDPrefix = "gid://shopify/ProductVariant/"

// AdminDomain composes the admin host for a configured store name.
func AdminDomain(storeName string) string {
	return fmt.Sprintf("%s.myshopify.com", storeName)
}

// VariantGID renders a product variant identifier in global id form.
// Identifiers that already carry a gid scheme pass through untouched.
func VariantGID(variantId string) string {
	if strings.HasPrefix(variantId, "gid://") {
		return variantId
	}
	return variantGIDPrefix + variantId
}

func GraphQLURL(domain string, apiVersion string) string {
	return fmt.Sprintf("https://%s/admin/api/%s/graphql.json", domain, apiVersion)
}

func VariantURL(domain string, apiVersion string, variantId string) string {
	return fmt.Sprintf("https://%s/admin/api/%s/variants/%s.json", domain, apiVersion, variantId)
}

func ProductURL(domain string, apiVersion string, productId string) string {
	return fmt.Sprintf("https://%s/admin/api/%s/products/%s.json", domain, apiVersion, productId)
}

func DraftOrdersURL(domain string, apiVersion string) string {
	return fmt.Sprintf("https://%s/admin/api/%s/draft_orders.json", domain, apiVersion)
}

// DomainAllowed checks a client-supplied store domain against the
// configured allow-list plus the deployment's own admin domain. The
// admin credential is only ever forwarded to hosts that pass this check.
func DomainAllowed(domain string, ownDomain string, allowList []string) (bool, error) {
	return helpers.HostInList(domain, append([]string{ownDomain}, allowList...))
}
