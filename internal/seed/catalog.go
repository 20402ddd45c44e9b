package seed

// Reference catalog the seeder guarantees on every start. Specializations
// are keyed by code, courses by (title, specialization); instructors are
// keyed by email. Changing an entry here changes what the next start
// provisions, not what already exists.

// DefaultInstructorPassword is the bootstrap password for seeded instructor
// accounts. Accounts flag passwordChanged=false until the owner rotates it.
const DefaultInstructorPassword = "Instructor123!"

type SpecializationSeed struct {
	Name        string
	Code        string
	Description string
}

type CourseSeed struct {
	Title           string
	Description     string
	InstructorName  string
	InstructorEmail string
}

type ModuleSeed struct {
	Title       string
	Description string
	Order       int
}

var Specializations = []SpecializationSeed{
	{
		Name:        "MSc in Data Analytics",
		Code:        "MSC-DA",
		Description: "Master of Science in Data Analytics - Learn advanced data analysis techniques, machine learning, and big data processing.",
	},
	{
		Name:        "MSc in Cyber Security",
		Code:        "MSC-CS",
		Description: "Master of Science in Cyber Security - Master network security, cryptography, ethical hacking, and security risk management.",
	},
	{
		Name:        "MSc in Cloud Computing",
		Code:        "MSC-CC",
		Description: "Master of Science in Cloud Computing - Design and deploy scalable cloud architectures, DevOps practices, and cloud services.",
	},
	{
		Name:        "MSc in Software Engineering",
		Code:        "MSC-SE",
		Description: "Master of Science in Software Engineering - Learn software design patterns, agile methodologies, testing, and project management.",
	},
	{
		Name:        "MSc in Artificial Intelligence",
		Code:        "MSC-AI",
		Description: "Master of Science in Artificial Intelligence - Explore machine learning, deep learning, NLP, and computer vision.",
	},
	{
		Name:        "MSc in DevOps",
		Code:        "MSC-DO",
		Description: "Master of Science in DevOps - Master containerization, CI/CD pipelines, infrastructure as code, and monitoring.",
	},
	{
		Name:        "MSc in Blockchain Technology",
		Code:        "MSC-BT",
		Description: "Master of Science in Blockchain Technology - Learn blockchain concepts, smart contracts, cryptocurrency, and consensus mechanisms.",
	},
	{
		Name:        "MSc in Digital Transformation",
		Code:        "MSC-DT",
		Description: "Master of Science in Digital Transformation - Understand digital strategy, business models, change management, and emerging technologies.",
	},
}

var CoursesBySpecialization = map[string][]CourseSeed{
	"MSC-DA": {
		{
			Title:           "Data Mining and Machine Learning",
			Description:     "Explore data mining techniques and machine learning algorithms for extracting insights from large datasets. Learn supervised and unsupervised learning, feature engineering, and model evaluation.",
			InstructorName:  "Dr. Sarah Johnson",
			InstructorEmail: "sarah.johnson@ncirl.ie",
		},
		{
			Title:           "Big Data Analytics",
			Description:     "Learn to process and analyze big data using distributed computing frameworks and tools. Master Hadoop, Spark, and cloud-based analytics platforms.",
			InstructorName:  "Dr. Michael Chen",
			InstructorEmail: "michael.chen@ncirl.ie",
		},
		{
			Title:           "Statistical Analysis and Visualization",
			Description:     "Master statistical methods and data visualization techniques for effective data communication. Learn R, Python visualization libraries, and dashboard creation.",
			InstructorName:  "Dr. Emily Rodriguez",
			InstructorEmail: "emily.rodriguez@ncirl.ie",
		},
		{
			Title:           "Business Intelligence and Data Warehousing",
			Description:     "Design and implement data warehouses and business intelligence solutions for organizations. Learn ETL processes, OLAP, and BI tools.",
			InstructorName:  "Dr. David Thompson",
			InstructorEmail: "david.thompson@ncirl.ie",
		},
	},
	"MSC-CS": {
		{
			Title:           "Network Security",
			Description:     "Learn to secure network infrastructure, detect threats, and implement security protocols. Master firewalls, intrusion detection systems, and network monitoring.",
			InstructorName:  "Dr. James Wilson",
			InstructorEmail: "james.wilson@ncirl.ie",
		},
		{
			Title:           "Cryptography and Secure Communications",
			Description:     "Study cryptographic algorithms, protocols, and secure communication systems. Learn symmetric and asymmetric encryption, digital signatures, and key management.",
			InstructorName:  "Dr. Lisa Anderson",
			InstructorEmail: "lisa.anderson@ncirl.ie",
		},
		{
			Title:           "Ethical Hacking and Penetration Testing",
			Description:     "Learn ethical hacking techniques and penetration testing methodologies. Master vulnerability assessment, exploit development, and security auditing.",
			InstructorName:  "Dr. Robert Martinez",
			InstructorEmail: "robert.martinez@ncirl.ie",
		},
		{
			Title:           "Security Risk Management",
			Description:     "Understand security risk assessment, management frameworks, and compliance requirements. Learn ISO 27001, NIST, and risk mitigation strategies.",
			InstructorName:  "Dr. Jennifer Lee",
			InstructorEmail: "jennifer.lee@ncirl.ie",
		},
	},
	"MSC-CC": {
		{
			Title:           "Cloud Platform Programming",
			Description:     "Learn cloud platform programming concepts, services, and best practices for building scalable applications on cloud platforms. Master AWS, Azure, and GCP SDKs.",
			InstructorName:  "Adriana Chis",
			InstructorEmail: "adriana.chis@ncirl.ie",
		},
		{
			Title:           "Cloud DevOpsSec",
			Description:     "Comprehensive course covering DevOps practices, CI/CD pipelines, security in cloud environments, and automation tools. Learn Terraform, Ansible, and security best practices.",
			InstructorName:  "Vikas Sahni",
			InstructorEmail: "vikas.sahni@ncirl.ie",
		},
		{
			Title:           "Cloud Architecture",
			Description:     "Design and implement scalable, resilient cloud architectures. Learn about microservices, serverless, and cloud design patterns. Master high availability and disaster recovery.",
			InstructorName:  "J. Hennessy",
			InstructorEmail: "j.hennessy@ncirl.ie",
		},
		{
			Title:           "Cloud Infrastructure and Services",
			Description:     "Master cloud infrastructure management, service models, and deployment strategies. Learn IaaS, PaaS, SaaS, and hybrid cloud solutions.",
			InstructorName:  "Dr. Mark Brown",
			InstructorEmail: "mark.brown@ncirl.ie",
		},
	},
	"MSC-SE": {
		{
			Title:           "Software Design Patterns",
			Description:     "Learn design patterns and architectural principles for building maintainable software systems. Master creational, structural, and behavioral patterns.",
			InstructorName:  "Dr. Patricia White",
			InstructorEmail: "patricia.white@ncirl.ie",
		},
		{
			Title:           "Agile Software Development",
			Description:     "Master agile methodologies, Scrum, Kanban, and collaborative software development practices. Learn sprint planning, retrospectives, and team collaboration.",
			InstructorName:  "Dr. Kevin Davis",
			InstructorEmail: "kevin.davis@ncirl.ie",
		},
		{
			Title:           "Software Testing and Quality Assurance",
			Description:     "Learn testing strategies, automation, and quality assurance processes for software development. Master unit testing, integration testing, and test-driven development.",
			InstructorName:  "Dr. Amanda Taylor",
			InstructorEmail: "amanda.taylor@ncirl.ie",
		},
		{
			Title:           "Software Project Management",
			Description:     "Understand project management principles, planning, and execution in software development contexts. Learn PMBOK, estimation techniques, and team leadership.",
			InstructorName:  "Dr. Christopher Moore",
			InstructorEmail: "christopher.moore@ncirl.ie",
		},
	},
	"MSC-AI": {
		{
			Title:           "Machine Learning Fundamentals",
			Description:     "Introduction to machine learning algorithms, supervised and unsupervised learning techniques. Learn regression, classification, clustering, and model evaluation.",
			InstructorName:  "Dr. Rachel Green",
			InstructorEmail: "rachel.green@ncirl.ie",
		},
		{
			Title:           "Deep Learning and Neural Networks",
			Description:     "Explore deep learning architectures, neural networks, and advanced AI models. Master CNNs, RNNs, transformers, and transfer learning.",
			InstructorName:  "Dr. Thomas Harris",
			InstructorEmail: "thomas.harris@ncirl.ie",
		},
		{
			Title:           "Natural Language Processing",
			Description:     "Learn to process and understand human language using AI and machine learning techniques. Master text preprocessing, sentiment analysis, and language models.",
			InstructorName:  "Dr. Nicole Clark",
			InstructorEmail: "nicole.clark@ncirl.ie",
		},
		{
			Title:           "Computer Vision",
			Description:     "Study image processing, object recognition, and computer vision applications. Learn image classification, object detection, and image segmentation.",
			InstructorName:  "Dr. Steven Lewis",
			InstructorEmail: "steven.lewis@ncirl.ie",
		},
	},
	"MSC-DO": {
		{
			Title:           "Containerization and Orchestration",
			Description:     "Master Docker, Kubernetes, and container orchestration technologies. Learn container networking, storage, and scaling strategies.",
			InstructorName:  "Dr. Michelle Adams",
			InstructorEmail: "michelle.adams@ncirl.ie",
		},
		{
			Title:           "CI/CD Pipeline Development",
			Description:     "Build and optimize continuous integration and deployment pipelines. Master Jenkins, GitLab CI, GitHub Actions, and pipeline automation.",
			InstructorName:  "Dr. Brian Scott",
			InstructorEmail: "brian.scott@ncirl.ie",
		},
		{
			Title:           "Infrastructure as Code",
			Description:     "Learn to manage infrastructure using code with Terraform, Ansible, and similar tools. Master declarative infrastructure and configuration management.",
			InstructorName:  "Dr. Kimberly Young",
			InstructorEmail: "kimberly.young@ncirl.ie",
		},
		{
			Title:           "Monitoring and Observability",
			Description:     "Implement monitoring, logging, and observability solutions for DevOps environments. Learn Prometheus, Grafana, ELK stack, and distributed tracing.",
			InstructorName:  "Dr. Daniel King",
			InstructorEmail: "daniel.king@ncirl.ie",
		},
	},
	"MSC-BT": {
		{
			Title:           "Blockchain Concepts",
			Description:     "Introduction to blockchain technology, distributed ledgers, smart contracts, and cryptocurrency fundamentals. Learn Bitcoin, Ethereum, and blockchain architecture.",
			InstructorName:  "Sean Heeney",
			InstructorEmail: "sean.heeney@ncirl.ie",
		},
		{
			Title:           "Smart Contract Development",
			Description:     "Learn to develop, test, and deploy smart contracts on blockchain platforms. Master Solidity, testing frameworks, and security best practices.",
			InstructorName:  "Dr. Laura Turner",
			InstructorEmail: "laura.turner@ncirl.ie",
		},
		{
			Title:           "Cryptocurrency and Digital Assets",
			Description:     "Understand cryptocurrency systems, digital asset management, and blockchain economics. Learn tokenomics, DeFi, and digital wallet security.",
			InstructorName:  "Dr. Ryan Phillips",
			InstructorEmail: "ryan.phillips@ncirl.ie",
		},
		{
			Title:           "Blockchain Security and Consensus",
			Description:     "Study consensus mechanisms, security models, and attack vectors in blockchain systems. Learn PoW, PoS, and security auditing techniques.",
			InstructorName:  "Dr. Stephanie Walker",
			InstructorEmail: "stephanie.walker@ncirl.ie",
		},
	},
	"MSC-DT": {
		{
			Title:           "Digital Strategy and Innovation",
			Description:     "Learn to develop digital transformation strategies and drive innovation in organizations. Master strategic planning, innovation frameworks, and digital maturity models.",
			InstructorName:  "Dr. Matthew Hall",
			InstructorEmail: "matthew.hall@ncirl.ie",
		},
		{
			Title:           "Digital Business Models",
			Description:     "Explore digital business models, platform economics, and value creation in digital ecosystems. Learn platform strategy, network effects, and digital monetization.",
			InstructorName:  "Dr. Ashley Baker",
			InstructorEmail: "ashley.baker@ncirl.ie",
		},
		{
			Title:           "Change Management in Digital Transformation",
			Description:     "Understand organizational change management and leadership in digital transformation initiatives. Learn change models, stakeholder management, and cultural transformation.",
			InstructorName:  "Dr. Joshua Wright",
			InstructorEmail: "joshua.wright@ncirl.ie",
		},
		{
			Title:           "Emerging Technologies and Trends",
			Description:     "Study emerging technologies, trends, and their impact on business transformation. Learn IoT, AI, blockchain, and their business applications.",
			InstructorName:  "Dr. Samantha Hill",
			InstructorEmail: "samantha.hill@ncirl.ie",
		},
	},
}

var SampleModules = []ModuleSeed{
	{
		Title:       "Introduction",
		Description: "Course introduction, learning objectives, and overview of topics covered throughout the course.",
		Order:       1,
	},
	{
		Title:       "Fundamentals",
		Description: "Core concepts and fundamental principles that form the foundation of the subject matter.",
		Order:       2,
	},
	{
		Title:       "Advanced Topics",
		Description: "Advanced concepts, techniques, and applications building upon the fundamentals.",
		Order:       3,
	},
	{
		Title:       "Practical Applications",
		Description: "Hands-on projects, case studies, and real-world applications of the concepts learned.",
		Order:       4,
	},
}
