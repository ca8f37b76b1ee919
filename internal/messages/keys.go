package messages

// Column headers.
const (
	ColumnProperty Key = "columns.property"
	ColumnValue    Key = "columns.value"
	ColumnType     Key = "columns.type"
	ColumnFormat   Key = "columns.format"
	ColumnHeight   Key = "columns.height"
	ColumnMin      Key = "columns.min"
	ColumnMax      Key = "columns.max"
)

// Input properties.
const (
	Rows                Key = "input.rows"
	AllowedOutliers     Key = "input.allowed_outliers"
	Percent             Key = "input.percent"
	Attributes          Key = "input.attributes"
	Identifying         Key = "input.identifying"
	IdentifyingRow      Key = "input.identifying_row"
	QuasiIdentifying    Key = "input.quasi_identifying"
	QuasiIdentifyingRow Key = "input.quasi_identifying_row"
	Sensitive           Key = "input.sensitive"
	SensitiveRow        Key = "input.sensitive_row"
	Insensitive         Key = "input.insensitive"
	InsensitiveRow      Key = "input.insensitive_row"
)

// Output properties.
const (
	OutlyingGroups    Key = "output.outlying_groups"
	Groups            Key = "output.groups"
	SuppressedGroups  Key = "output.suppressed_groups"
	InformationLoss   Key = "output.information_loss"
	Successors        Key = "output.successors"
	Predecessors      Key = "output.predecessors"
	Transformation    Key = "output.transformation"
	NotAnonymous      Key = "output.not_anonymous"
	NotAnonymousValue Key = "output.not_anonymous_value"
	Disabled          Key = "output.disabled"
)

// Privacy criteria.
const (
	CriterionAttribute                  Key = "criteria.attribute"
	DPresence                           Key = "criteria.d_presence"
	DPresenceValue                      Key = "criteria.d_presence_value"
	DMin                                Key = "criteria.d_min"
	DMax                                Key = "criteria.d_max"
	KAnonymity                          Key = "criteria.k_anonymity"
	KAnonymityValue                     Key = "criteria.k_anonymity_value"
	K                                   Key = "criteria.k"
	DistinctLDiversity                  Key = "criteria.distinct_l_diversity"
	DistinctLDiversityValue             Key = "criteria.distinct_l_diversity_value"
	EntropyLDiversity                   Key = "criteria.entropy_l_diversity"
	EntropyLDiversityValue              Key = "criteria.entropy_l_diversity_value"
	RecursiveCLDiversity                Key = "criteria.recursive_cl_diversity"
	RecursiveCLDiversityValue           Key = "criteria.recursive_cl_diversity_value"
	C                                   Key = "criteria.c"
	L                                   Key = "criteria.l"
	EqualDistanceTCloseness             Key = "criteria.equal_distance_t_closeness"
	EqualDistanceTClosenessValue        Key = "criteria.equal_distance_t_closeness_value"
	HierarchicalDistanceTCloseness      Key = "criteria.hierarchical_distance_t_closeness"
	HierarchicalDistanceTClosenessValue Key = "criteria.hierarchical_distance_t_closeness_value"
	T                                   Key = "criteria.t"
	Height                              Key = "criteria.height"
)
