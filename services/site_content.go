package services

import "strings"

// SocialLink is a profile link shown in the header, sidebar and footer
type SocialLink struct {
	Name     string
	URL      string
	Username string
	Label    string
	Icon     string
}

// SocialLinks is the centralized social media configuration.
var SocialLinks = []SocialLink{
	{Name: "LinkedIn", URL: "https://www.linkedin.com/in/santoshkmis/", Username: "santoshkmis", Label: "Connect on LinkedIn", Icon: "linkedin"},
	{Name: "Twitter", URL: "https://twitter.com/santoshmgeecon", Username: "@santoshmgeecon", Label: "Follow on Twitter", Icon: "twitter"},
	{Name: "Instagram", URL: "https://www.instagram.com/santoshkumar.uk/", Username: "santoshkumar.uk", Label: "Follow on Instagram", Icon: "instagram"},
	{Name: "Facebook", URL: "https://www.facebook.com/santkmis", Username: "santkmis", Label: "Follow on Facebook", Icon: "facebook"},
	{Name: "YouTube", URL: "https://www.youtube.com/@Santosh.Kumar801", Username: "@Santosh.Kumar801", Label: "Subscribe on YouTube", Icon: "youtube"},
}

// ServiceOffering is a card in the services section
type ServiceOffering struct {
	Title       string
	Description string
	Features    []string
}

var ServiceOfferings = []ServiceOffering{
	{
		Title:       "Strategic Planning",
		Description: "Develop comprehensive strategic plans that align with your vision, market position, and long-term objectives. We create actionable roadmaps that drive measurable results.",
		Features:    []string{"Market Analysis", "Competitive Positioning", "Goal Setting"},
	},
	{
		Title:       "Growth Strategy",
		Description: "Accelerate your business growth with data-driven strategies for market expansion, revenue optimization, and sustainable scaling across all business functions.",
		Features:    []string{"Revenue Growth", "Market Expansion", "Scalability Planning"},
	},
	{
		Title:       "Organizational Development",
		Description: "Transform your organizational structure, culture, and capabilities to support strategic objectives and drive high-performance teams.",
		Features:    []string{"Team Optimization", "Culture Transformation", "Leadership Development"},
	},
	{
		Title:       "Performance Optimization",
		Description: "Identify and eliminate inefficiencies, optimize processes, and improve operational performance to maximize profitability and competitive advantage.",
		Features:    []string{"Process Improvement", "Cost Optimization", "Efficiency Gains"},
	},
	{
		Title:       "Innovation Strategy",
		Description: "Foster innovation and digital transformation initiatives that keep your business ahead of the curve and responsive to market changes.",
		Features:    []string{"Digital Transformation", "Innovation Frameworks", "Technology Strategy"},
	},
	{
		Title:       "Business Transformation",
		Description: "Navigate major business transformations, mergers, acquisitions, and restructuring with expert guidance and change management support.",
		Features:    []string{"M&A Strategy", "Change Management", "Restructuring"},
	},
}

// ProcessStep is one step of the engagement process
type ProcessStep struct {
	Number      int
	Title       string
	Description string
}

var ProcessSteps = []ProcessStep{
	{Number: 1, Title: "Initial Consultation", Description: "Schedule a free 60-minute strategy session. We'll discuss your business challenges, goals, and explore how strategic consulting can drive your growth."},
	{Number: 2, Title: "Strategic Assessment", Description: "We conduct a comprehensive analysis of your business, market position, competitive landscape, and opportunities. Our team creates a detailed strategic roadmap tailored to your objectives."},
	{Number: 3, Title: "Strategy Development", Description: "We develop and refine your strategic plan with actionable initiatives, KPIs, and success metrics. You'll receive a clear roadmap with timelines and resource requirements."},
	{Number: 4, Title: "Implementation & Support", Description: "We work alongside your team to implement the strategy, provide ongoing guidance, monitor progress, and adjust as needed to ensure you achieve your goals."},
}

// PricingTier describes a package; the price itself comes from the region content.
type PricingTier struct {
	ID          string
	Name        string
	Description string
	Features    []string
	Popular     bool
}

var PricingTiers = []PricingTier{
	{
		ID:          "starter",
		Name:        "Starter Strategy",
		Description: "Perfect for small businesses ready to scale",
		Features:    []string{"Initial business assessment", "Strategic roadmap development", "3 months of email support", "Growth opportunity analysis", "Implementation guide"},
	},
	{
		ID:          "growth",
		Name:        "Growth Accelerator",
		Description: "Comprehensive strategy for rapid expansion",
		Features:    []string{"Everything in Starter", "6 months of ongoing support", "Quarterly strategy reviews", "Team training sessions", "Performance tracking dashboard", "Priority consultation access"},
		Popular:     true,
	},
	{
		ID:          "enterprise",
		Name:        "Enterprise Transformation",
		Description: "Full-scale transformation with dedicated support",
		Features:    []string{"Everything in Growth", "12 months of dedicated support", "Monthly strategy sessions", "Custom implementation plan", "Dedicated account manager", "24/7 priority support", "Success guarantee"},
	},
}

type Testimonial struct {
	Name    string
	Role    string
	Company string
	Content string
	Rating  int
}

// Initials returns the first two letters of the company, used as a logo placeholder
func (t Testimonial) Initials() string {
	r := []rune(t.Company)
	if len(r) > 2 {
		r = r[:2]
	}
	return strings.ToUpper(string(r))
}

var Testimonials = []Testimonial{
	{Name: "Sarah Chen", Role: "CEO", Company: "TechFlow Inc.", Rating: 5, Content: "Working with this consulting team transformed our business. Their strategic insights helped us achieve 300% revenue growth in just 18 months. The data-driven approach and clear execution roadmap made all the difference."},
	{Name: "Michael Rodriguez", Role: "COO", Company: "Manufacturing Solutions", Rating: 5, Content: "The operational excellence program they designed reduced our costs by 25% while improving quality. Their expertise in lean manufacturing and process optimization was exactly what we needed to stay competitive."},
	{Name: "Emily Watson", Role: "VP of Strategy", Company: "Global Retail Group", Rating: 5, Content: "Their digital transformation strategy helped us launch a successful e-commerce platform that now accounts for 40% of our sales. The team's guidance through the entire process was invaluable."},
	{Name: "David Kim", Role: "Founder", Company: "InnovateTech", Rating: 5, Content: "As a startup, we needed strategic direction to scale effectively. The growth strategy they developed gave us clarity on market positioning, pricing, and customer acquisition. Highly recommend!"},
	{Name: "Lisa Anderson", Role: "President", Company: "Anderson Industries", Rating: 5, Content: "The organizational development work they did transformed our company culture and improved team performance significantly. Their change management approach made the transition smooth and effective."},
}

// KeyResult is a headline metric of a case study
type KeyResult struct {
	Metric string
	Value  string
}

type CaseStudy struct {
	ID         string
	Title      string
	Industry   string
	Problem    string
	Solution   string
	Outcome    string
	KeyResults []KeyResult
}

var CaseStudies = []CaseStudy{
	{
		ID:         "1",
		Title:      "Tech Startup Revenue Growth Strategy",
		Industry:   "Technology",
		Problem:    "A fast-growing SaaS startup was struggling to scale revenue beyond $5M ARR. Despite strong product-market fit, they lacked a clear go-to-market strategy and were burning cash inefficiently.",
		Solution:   "Developed a comprehensive growth strategy including market segmentation, pricing optimization, sales process redesign, and customer acquisition funnel improvements. Implemented data-driven decision frameworks and KPIs.",
		Outcome:    "Achieved 300% revenue growth in 18 months, improved unit economics, and secured Series B funding. The company is now on a clear path to profitability.",
		KeyResults: []KeyResult{{"Revenue Growth", "300%"}, {"CAC Payback", "40%"}, {"Team Size", "2.5x"}},
	},
	{
		ID:         "2",
		Title:      "Manufacturing Company Operational Excellence",
		Industry:   "Manufacturing",
		Problem:    "A mid-size manufacturing company faced declining margins, operational inefficiencies, and increasing competition. They needed to transform operations to remain competitive.",
		Solution:   "Conducted comprehensive operational assessment and implemented lean manufacturing principles, supply chain optimization, and quality management systems. Redesigned organizational structure and performance metrics.",
		Outcome:    "Reduced operational costs by 25%, improved on-time delivery to 98%, and increased profit margins by 15%. The company is now positioned as an industry leader.",
		KeyResults: []KeyResult{{"Cost Reduction", "25%"}, {"On-Time Delivery", "98%"}, {"Margin Improvement", "15%"}},
	},
	{
		ID:         "3",
		Title:      "Retail Chain Digital Transformation",
		Industry:   "Retail",
		Problem:    "A traditional retail chain with 50+ locations was losing market share to e-commerce competitors. They needed a digital transformation strategy to remain relevant.",
		Solution:   "Developed an omnichannel strategy combining e-commerce platform, mobile app, in-store technology integration, and data analytics. Created customer experience roadmap and change management plan.",
		Outcome:    "Launched successful e-commerce platform achieving 40% of total sales online within 12 months. Improved customer retention by 35% and increased average order value by 20%.",
		KeyResults: []KeyResult{{"Online Sales", "40%"}, {"Customer Retention", "35%"}, {"AOV Increase", "20%"}},
	},
}

// FindCaseStudy returns the case study with the given id
func FindCaseStudy(id string) (CaseStudy, bool) {
	for _, cs := range CaseStudies {
		if cs.ID == id {
			return cs, true
		}
	}
	return CaseStudy{}, false
}
