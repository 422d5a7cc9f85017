package prompt

import (
	"fmt"

	"resume-studio/pkg/profile"
)

// Placeholders substituted for absent optional fields so the model always
// sees every label.
const (
	notSpecified = "Not specified"
	noneListed   = "None listed"
)

// Build renders the generation instruction for a profile and template
// style. Pure string interpolation: the same inputs always produce
// byte-identical output, and field values pass through verbatim.
func Build(p profile.UserProfile, style profile.Style) (prompt string) {
	base := baseInfo(p)

	switch style {
	case profile.StyleTechnical:
		prompt = technicalPrompt(base)
	case profile.StyleCreative:
		prompt = creativePrompt(base)
	case profile.StyleAcademic:
		prompt = academicPrompt(base)
	default:
		prompt = professionalPrompt(base)
	}

	return prompt
}

// baseInfo renders the fixed label/value block shared by every style.
func baseInfo(p profile.UserProfile) (block string) {
	block = fmt.Sprintf(`Name: %s
Role: %s
Phone: %s
Email: %s
Location: %s
LinkedIn: %s
GitHub: %s
Skills: %s
Experience: %s
Education: %s
Certifications: %s`,
		p.Name,
		p.Role,
		p.Phone,
		p.Email,
		orPlaceholder(p.Location, notSpecified),
		orPlaceholder(p.LinkedIn, notSpecified),
		orPlaceholder(p.GitHub, notSpecified),
		orPlaceholder(p.Skills, notSpecified),
		orPlaceholder(p.Experience, notSpecified),
		orPlaceholder(p.Education, notSpecified),
		orPlaceholder(p.Certifications, noneListed),
	)
	return block
}

func orPlaceholder(value, placeholder string) (result string) {
	result = value
	if result == "" {
		result = placeholder
	}
	return result
}

func professionalPrompt(base string) (prompt string) {
	prompt = fmt.Sprintf(`Create a professional, ATS-friendly resume with clean formatting. Use the following information:

%s

Format requirements:
- Use ALL CAPS for section headers
- Use simple dashes (-) for bullet points
- Keep formatting clean and scannable
- Include sections: CONTACT INFO, EDUCATION, TECHNICAL SKILLS, EXPERIENCE, CERTIFICATIONS
- Make it concise but comprehensive
- Use action verbs and quantify achievements where possible

Generate a complete, professional resume.`, base)
	return prompt
}

func technicalPrompt(base string) (prompt string) {
	prompt = fmt.Sprintf(`Create a technical resume optimized for software engineering roles. Use the following information:

%s

Format requirements:
- Emphasize technical skills and projects
- Use ALL CAPS for section headers
- Include sections: CONTACT INFO, TECHNICAL SKILLS, EXPERIENCE, EDUCATION, CERTIFICATIONS
- Highlight programming languages, frameworks, and tools
- Focus on technical achievements and impact
- Use metrics and numbers where possible

Generate a complete, technical resume.`, base)
	return prompt
}

func creativePrompt(base string) (prompt string) {
	prompt = fmt.Sprintf(`Create a creative but professional resume with engaging language. Use the following information:

%s

Format requirements:
- Use dynamic action words
- Show personality while maintaining professionalism
- Use ALL CAPS for section headers
- Include sections: CONTACT INFO, SUMMARY, EXPERIENCE, SKILLS, EDUCATION, CERTIFICATIONS
- Include a brief professional summary
- Highlight unique achievements and value propositions

Generate a complete, creative resume.`, base)
	return prompt
}

func academicPrompt(base string) (prompt string) {
	prompt = fmt.Sprintf(`Create an academic-style resume with detailed education focus. Use the following information:

%s

Format requirements:
- Emphasize education, research, and academic achievements
- Use ALL CAPS for section headers
- Include sections: CONTACT INFO, EDUCATION, RESEARCH EXPERIENCE, SKILLS, CERTIFICATIONS
- Include GPA if mentioned in education
- Focus on academic contributions and scholarly work

Generate a complete, academic resume.`, base)
	return prompt
}
