package models

// Project is one entry of the static portfolio catalog. The catalog is
// compiled in: it changes with deploys, not at runtime, so there is no table
// behind it.
type Project struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Client           string   `json:"client"`
	Timeline         string   `json:"timeline"`
	Role             string   `json:"role"`
	Technologies     []string `json:"technologies"`
	ShortDescription string   `json:"shortDescription"`
	Challenge        string   `json:"challenge"`
	Solution         string   `json:"solution"`
	Category         string   `json:"category"`
	LiveURL          string   `json:"liveUrl,omitempty"`
}

var Projects = []Project{
	{
		ID:               "primeline-ecommerce",
		Title:            "Primeline.com E-commerce Platform",
		Client:           "Primeline Corporation",
		Timeline:         "8 months",
		Role:             "Lead Frontend Developer & System Integrator",
		Technologies:     []string{"Shopify Hydrogen", "React", "NetSuite", "GraphQL", "Tailwind CSS", "Shopify Admin API", "REST APIs", "Oxygen Hosting"},
		ShortDescription: "A sophisticated e-commerce platform with Shopify Hydrogen and NetSuite integration for real-time pricing and decoration data.",
		Challenge:        "Primeline.com required a sophisticated e-commerce platform that could handle complex product customization, real-time pricing from NetSuite, and extensive decoration options. The challenge was building a headless Hydrogen storefront that could seamlessly integrate with existing systems while providing a modern, fast user experience.",
		Solution:         "Developed a comprehensive headless Hydrogen storefront with custom blocks system, advanced search enhancements, automated product mapping systems, and sales rep tools. Implemented real-time data synchronization with NetSuite through micro services architecture and created a robust Git-based deployment workflow with custom CI pipeline.",
		Category:         "web",
		LiveURL:          "https://primeline.com",
	},
	{
		ID:               "lacroix-digital-ecosystem",
		Title:            "LaCroix Sparkling Water - Complete Digital Ecosystem",
		Client:           "LaCroix Sparkling Water",
		Timeline:         "6 months",
		Role:             "Full-Stack Developer & Brand Implementation Lead",
		Technologies:     []string{"WordPress", "Magento 2", "PHP", "Custom Theme Development", "Advanced Custom Fields", "Mailchimp API", "Payment Gateway Integration", "JavaScript Animations"},
		ShortDescription: "A complete digital transformation with custom WordPress website and Magento 2 e-commerce store for LaCroix Sparkling Water.",
		Challenge:        "LaCroix Sparkling Water needed a complete digital transformation to showcase their brand personality and provide seamless e-commerce functionality. The main challenge was creating a cohesive brand experience that captured LaCroix's fun, sparkling personality while delivering professional e-commerce functionality with custom animations, interactive recipe cards, and social media integration.",
		Solution:         "Built two interconnected platforms: a vibrant WordPress website for brand engagement featuring custom animations, interactive recipe cards, and social media integration, alongside a robust Magento 2 store for merchandise sales. Implemented unified brand experience across both platforms with consistent design language and optimized user flows.",
		Category:         "web",
		LiveURL:          "https://www.lacroixwater.com/",
	},
	{
		ID:               "faygo-detroit-pop",
		Title:            "Faygo - The One True Pop",
		Client:           "Faygo Beverages",
		Timeline:         "5 months",
		Role:             "Full-Stack WordPress Developer & Brand Experience Designer",
		Technologies:     []string{"WordPress", "PHP", "Custom Theme Development", "Advanced Custom Fields", "JavaScript", "Google Maps API", "WooCommerce", "Social Media Integration"},
		ShortDescription: "A custom WordPress website for Detroit's iconic pop company featuring interactive flavor explorer and authentic Motor City design.",
		Challenge:        "Faygo Beverages, Detroit's iconic pop company since 1907, needed a digital presence that captured their authentic Motor City spirit and showcased their incredible variety of over 50 unique flavors. The challenge was creating a website that honored their rich history while appealing to both longtime fans and new customers.",
		Solution:         "Created a custom WordPress website that celebrates Faygo's pop culture significance with an interactive flavor discovery experience and authentic Detroit personality. Developed custom post types for flavor management, integrated e-commerce functionality, and built an advanced store locator to help fans find their favorite flavors nationwide.",
		Category:         "web",
		LiveURL:          "https://www.faygo.com/",
	},
	{
		ID:               "saltwater-getaway-yacht-charter",
		Title:            "Saltwater Getaway - Luxury Yacht Charter Service",
		Client:           "Saltwater Getaway",
		Timeline:         "4 months",
		Role:             "Squarespace Developer & Tourism UX Designer",
		Technologies:     []string{"Squarespace", "FareHarbor Integration", "Custom CSS/JavaScript", "Responsive Design", "SEO Optimization", "Payment Processing", "Booking System Integration"},
		ShortDescription: "A luxury yacht charter website with Squarespace and FareHarbor booking integration for premium marine tourism experiences.",
		Challenge:        "Saltwater Getaway needed a premium website that could showcase their luxury yacht charter services while providing a seamless booking experience for customers. The challenge was creating a sophisticated platform that conveyed the exclusivity and personalization of their services while integrating a robust booking system.",
		Solution:         "Developed a custom Squarespace site with FareHarbor integration, featuring elegant design, comprehensive service presentation, crew profiles, and streamlined booking workflows. Created visual storytelling elements and mobile-optimized experiences that showcase yacht experiences and Florida's beautiful coastline to inspire bookings.",
		Category:         "web",
		LiveURL:          "https://www.saltwatergetaway.com/",
	},
	{
		ID:               "oceanblue-omega-supplements",
		Title:            "OceanBlue Omega - Premium Supplement Store",
		Client:           "OceanBlue Omega",
		Timeline:         "6 months",
		Role:             "Shopify Developer & E-commerce UX Designer",
		Technologies:     []string{"Shopify", "Liquid", "JavaScript", "Mobile-First Design", "Klaviyo", "Google Maps API", "CSS/SCSS", "E-commerce Optimization"},
		ShortDescription: "A premium Shopify supplement store with custom Liquid theme, interactive product quiz, and sustainability-focused branding.",
		Challenge:        "OceanBlue Omega needed a premium e-commerce platform that could educate customers about complex nutritional benefits while providing a seamless mobile shopping experience. The challenge was positioning them as the premium choice in the crowded supplement market while building trust through transparency and quality messaging.",
		Solution:         "Developed a custom Shopify Liquid theme with mobile-first design principles, interactive product recommendations, sustainability storytelling, and conversion-optimized checkout flows. Created an educational platform that builds trust through quality certifications, environmental partnerships, and clear value propositions.",
		Category:         "web",
		LiveURL:          "https://www.oceanblueomega.com/",
	},
	{
		ID:               "carbon-marine-equipment",
		Title:            "Carbon Marine - Specialized Marine Equipment Store",
		Client:           "Carbon Marine",
		Timeline:         "5 months",
		Role:             "Shopify Developer & Marine Industry UX Specialist",
		Technologies:     []string{"Shopify", "Liquid", "JavaScript", "CSS/SCSS", "Mobile-First Design", "E-commerce Optimization", "Marine Industry UX"},
		ShortDescription: "A specialized Shopify marine equipment store with custom Liquid theme and complex product categorization for the fishing industry.",
		Challenge:        "Carbon Marine required a specialized e-commerce platform to showcase their premium marine equipment to a highly knowledgeable customer base. The challenge was creating a Shopify store that could effectively organize and present complex product lines while maintaining the technical credibility essential in the marine industry.",
		Solution:         "Developed a custom Liquid theme with sophisticated product categorization, detailed technical specifications display, and mobile-responsive design optimized for both on-the-water and desktop shopping experiences. Created an intuitive navigation system for hundreds of specialized marine products organized by type, compatibility, and application.",
		Category:         "web",
		LiveURL:          "https://www.carbonmarine.com/",
	},
}

// ProjectByID returns the catalog entry with the given id.
func ProjectByID(id string) (Project, bool) {
	for _, p := range Projects {
		if p.ID == id {
			return p, true
		}
	}
	return Project{}, false
}
