package webreport

import (
	"fmt"
	"strings"
)

// usageProfile returns a tailored usage guide for well-known domains, matched
// by substring. Unknown domains get the generic guide.
func usageProfile(domain, pageURL string) (Usage, bool) {
	d := strings.ToLower(domain)

	switch {
	case strings.Contains(d, "google"):
		return Usage{
			GettingStarted: []string{
				fmt.Sprintf("Open %s and use the search box to perform queries", pageURL),
				"Sign in with a Google account to access personalized features (Gmail, Drive, Maps, YouTube)",
				"Use the menu (Apps) to access services like News, Maps, and Drive",
			},
			MainFeatures: []string{
				"Search results with featured snippets and knowledge panels",
				"Personalized recommendations and search history",
				"Integrated services: Gmail, Drive, Maps, YouTube, Photos, Calendar",
				"Voice search and mobile-optimized results",
				"Local results, maps, and business listings",
			},
			BestPractices: []string{
				"Use clear, concise search queries to get relevant results",
				"Sign in to synchronize preferences across devices",
				"Enable two-factor authentication for account security",
				"Use filters (News, Images, Videos, Maps) to refine results",
				"Review privacy settings for personalized content control",
			},
			TargetAudience: "General public searching for information, businesses managing local listings, and developers using Google APIs",
			UseCases: []string{
				"Quick web searches and fact-finding",
				"Accessing email via Gmail and files via Drive",
				"Using Maps for directions and local business info",
				"Watching and sharing videos on YouTube",
				"Using Google Workspace for collaboration",
			},
		}, true

	case strings.Contains(d, "youtube"):
		return Usage{
			GettingStarted: []string{
				fmt.Sprintf("Browse %s for trending videos or search for specific channels/content", pageURL),
				"Sign in to subscribe to channels and save playlists",
				"Use recommended feed and explore categories for discovery",
			},
			MainFeatures: []string{
				"Video streaming with adaptive quality",
				"Recommendations based on watch history",
				"Channel subscriptions, comments, and playlists",
				"Live streaming and premieres",
			},
			BestPractices: []string{
				"Use descriptive search terms and filters (Upload date, Type, Duration)",
				"Subscribe and enable notifications for channels you follow",
				"Use playlists to organize content",
			},
			TargetAudience: "Viewers, creators, and advertisers",
			UseCases: []string{
				"Consume video content for education and entertainment",
				"Publish videos and grow an audience",
				"Advertise to targeted demographics",
			},
		}, true

	case strings.Contains(d, "amazon"):
		return Usage{
			GettingStarted: []string{
				fmt.Sprintf("Search products on %s and use filters to narrow results", pageURL),
				"Create an account to purchase, review, and track orders",
				"Use wishlists and saved items for later purchase",
			},
			MainFeatures: []string{
				"Product listings with ratings and reviews",
				"Personalized recommendations and deals",
				"Order management, shipping, and return flows",
				"Seller dashboards and marketplaces",
			},
			BestPractices: []string{
				"Read product reviews and check seller ratings",
				"Use filters and sort by price or review score",
				"Monitor deals and apply coupons when available",
			},
			TargetAudience: "Shoppers, sellers, and enterprise buyers",
			UseCases: []string{
				"Find and buy products",
				"Manage seller listings and inventory",
				"Research pricing and availability",
			},
		}, true

	case strings.Contains(d, "github"):
		return Usage{
			GettingStarted: []string{
				fmt.Sprintf("Browse repositories on %s or search by topic", pageURL),
				"Sign in to star repositories, fork, and contribute via pull requests",
				"Use Issues and Discussions to engage with projects",
			},
			MainFeatures: []string{
				"Source code hosting and version control",
				"Issue tracking and project boards",
				"Pull requests and code reviews",
				"Actions for CI/CD",
			},
			BestPractices: []string{
				"Follow contribution guidelines before submitting pull requests",
				"Use descriptive commit messages and PR descriptions",
				"Protect main branches with required reviews",
			},
			TargetAudience: "Developers, maintainers, and DevOps teams",
			UseCases: []string{
				"Collaborative software development",
				"Open source project discovery",
				"CI/CD automation and package releases",
			},
		}, true

	case strings.Contains(d, "wikipedia"):
		return Usage{
			GettingStarted: []string{
				fmt.Sprintf("Search for encyclopedia entries on %s", pageURL),
				"Use language selector for localized content",
				"Review references and external links for primary sources",
			},
			MainFeatures: []string{
				"Comprehensive encyclopedia-style articles",
				"Community-edited content with revision history",
				"Extensive interlinking between topics",
			},
			BestPractices: []string{
				"Cross-check facts via cited sources",
				"Use the revision history to view changes",
				"Contribute improvements following citation policies",
			},
			TargetAudience: "Researchers, students, and general readers",
			UseCases: []string{
				"Quick fact lookup",
				"Background research",
				"Reference checking",
			},
		}, true

	case strings.Contains(d, "facebook") || strings.Contains(d, "meta"):
		return Usage{
			GettingStarted: []string{
				fmt.Sprintf("Log in to %s to connect with friends and join groups", pageURL),
				"Use the search bar to find people, pages, and groups",
				"Adjust privacy settings to control who sees your content",
			},
			MainFeatures: []string{
				"News Feed with algorithmic ranking",
				"Pages, Groups, and Events for community engagement",
				"Messaging via Messenger and sharing multimedia content",
			},
			BestPractices: []string{
				"Review privacy and security settings regularly",
				"Use groups and pages to reach targeted audiences",
				"Moderate comments and manage community guidelines",
			},
			TargetAudience: "General users, communities, marketers, and advertisers",
			UseCases: []string{
				"Social networking and community building",
				"Content sharing and event promotion",
				"Advertising and audience targeting",
			},
		}, true

	case strings.Contains(d, "linkedin"):
		return Usage{
			GettingStarted: []string{
				fmt.Sprintf("Create or sign in to your LinkedIn profile at %s", pageURL),
				"Complete your profile to improve discoverability",
				"Follow companies and join professional groups",
			},
			MainFeatures: []string{
				"Professional profiles and networking",
				"Job listings and applicant tools",
				"Content publishing and company pages",
			},
			BestPractices: []string{
				"Keep your profile up to date and add relevant skills",
				"Engage with industry posts and publish thought leadership",
				"Use networking features to expand professional connections",
			},
			TargetAudience: "Professionals, recruiters, and companies",
			UseCases: []string{
				"Job searching and hiring",
				"Professional networking",
				"B2B marketing and thought leadership",
			},
		}, true

	case strings.Contains(d, "twitter") || strings.Contains(d, "x.com"):
		return Usage{
			GettingStarted: []string{
				fmt.Sprintf("Browse latest posts on %s or search by hashtag", pageURL),
				"Create an account to follow topics and participate in conversations",
				"Use lists and bookmarks to organize important content",
			},
			MainFeatures: []string{
				"Short-form posts and real-time updates",
				"Hashtags for topic discovery",
				"Trends and verified accounts for authoritative info",
			},
			BestPractices: []string{
				"Keep messages concise and use hashtags for discoverability",
				"Engage with replies and keep community moderation in mind",
				"Use threads to provide more context when needed",
			},
			TargetAudience: "Journalists, public figures, and fast-moving communities",
			UseCases: []string{
				"Real-time news and commentary",
				"Brand updates and customer interactions",
				"Community engagement around trending topics",
			},
		}, true

	case strings.Contains(d, "microsoft") || strings.Contains(d, "office"):
		return Usage{
			GettingStarted: []string{
				fmt.Sprintf("Access Microsoft services via %s or Office.com", pageURL),
				"Sign in with a Microsoft account to access Office apps and cloud services",
				"Use portal navigation to find apps like Outlook, OneDrive, and Teams",
			},
			MainFeatures: []string{
				"Office web apps (Word, Excel, PowerPoint)",
				"Cloud storage via OneDrive",
				"Collaboration through Teams and SharePoint",
			},
			BestPractices: []string{
				"Use OneDrive for file synchronization and sharing",
				"Use Teams for meetings and internal collaboration",
				"Follow enterprise security best practices for user accounts",
			},
			TargetAudience: "Enterprises, education institutions, and professionals",
			UseCases: []string{
				"Document collaboration and storage",
				"Enterprise communications and meetings",
				"Productivity with Office apps",
			},
		}, true

	case strings.Contains(d, "shopify"):
		return Usage{
			GettingStarted: []string{
				fmt.Sprintf("Explore store listings or sign in to manage your Shopify store at %s", pageURL),
				"Use the admin dashboard to add products and manage orders",
				"Customize storefront themes for branding",
			},
			MainFeatures: []string{
				"E-commerce store management",
				"Payment processing and shipping integrations",
				"App ecosystem for extended functionality",
			},
			BestPractices: []string{
				"Optimize product listings with clear images and descriptions",
				"Enable analytics to monitor conversions and traffic sources",
				"Use promotions and discounts to increase sales",
			},
			TargetAudience: "Merchants and online retailers",
			UseCases: []string{
				"Sell products online",
				"Manage inventory and orders",
				"Integrate marketing and analytics tools",
			},
		}, true
	}

	return Usage{}, false
}
